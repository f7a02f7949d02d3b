package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptly-io/promptly/cmd"
	"github.com/promptly-io/promptly/pkg/prompting"
)

func loginMain(command *cobra.Command, arguments []string) error {
	// Prompt for the username. The response mode is determined from the
	// prompt text, so this one is echoed.
	username, err := prompting.PromptCommandLine("Username: ")
	if err != nil {
		return err
	}

	// Prompt for the password, which is classified as secret and not echoed.
	password, err := prompting.PromptCommandLine("Password: ")
	if err != nil {
		return err
	}

	// Report what was captured without revealing the secret.
	fmt.Printf("Captured credentials for %s (%d-character password)\n", username, len(password))

	// Success.
	return nil
}

var loginCommand = &cobra.Command{
	Use:   "login",
	Short: "Demonstrate secret credential capture",
	Run:   cmd.Mainify(loginMain),
}

var loginConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := loginCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&loginConfiguration.help, "help", "h", false, "Show help information")
}
