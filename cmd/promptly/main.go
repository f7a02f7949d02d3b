package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/promptly-io/promptly/pkg/locale"
)

// localeFlag is a pflag.Value that resolves and validates locale names as
// they're parsed.
type localeFlag struct {
	// l is the resolved locale, if any.
	l *locale.Locale
}

// String implements pflag.Value.String.
func (f *localeFlag) String() string {
	if f.l == nil {
		return ""
	}
	return f.l.Tag.String()
}

// Set implements pflag.Value.Set.
func (f *localeFlag) Set(value string) error {
	l, err := locale.Resolve(value)
	if err != nil {
		return err
	}
	f.l = l
	return nil
}

// Type implements pflag.Value.Type.
func (f *localeFlag) Type() string {
	return "locale"
}

var _ pflag.Value = &localeFlag{}

// rootCommand is the root command of the promptly CLI.
var rootCommand = &cobra.Command{
	Use:   "promptly",
	Short: "Interactive acquisition of validated, typed console input",
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// locale overrides the session locale for all subcommands.
	locale localeFlag
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Add the locale override, shared by all subcommands.
	rootCommand.PersistentFlags().VarP(&rootConfiguration.locale, "locale", "l", "Session locale (BCP 47 tag)")

	// Register commands.
	rootCommand.AddCommand(
		askCommand,
		loginCommand,
		timersCommand,
		versionCommand,
	)
}

func main() {
	// Load any .env overrides (such as PROMPTLY_LOCALE) before commands run.
	// A missing .env file is not an error.
	godotenv.Load()

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
