package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptly-io/promptly/cmd"
	"github.com/promptly-io/promptly/pkg/session"
)

func askMain(command *cobra.Command, arguments []string) error {
	// Create a session and defer its shutdown.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Remember every answer so that re-runs within the session can recall
	// defaults.
	s.SetStoreAll(true)

	// Run the questionnaire. A failed or cancelled step skips the remainder.
	var name string
	var age int64
	var subscribe bool
	chain := s.Chain().
		AskString(&session.Options{
			Message:           "Name: ",
			ValidationMessage: "A name is required.",
		}, &name).
		AskInt(&session.Options{
			Message:     "Age: ",
			NonNegative: true,
			Validate: func(value interface{}) bool {
				return value.(int64) <= 130
			},
			ValidationMessage: "Please enter an age between 0 and 130.",
		}, &age).
		AskBool(&session.Options{
			Message: "Subscribe to the newsletter? (yes/no): ",
		}, &subscribe)
	if err := chain.Err(); err != nil {
		return err
	}

	// Print the collected responses in acquisition order.
	fmt.Println("Collected responses:")
	for _, prompt := range s.History().All() {
		fmt.Printf("  %s%v\n", prompt.Message, prompt.Response)
	}

	// Success.
	return nil
}

var askCommand = &cobra.Command{
	Use:   "ask",
	Short: "Run an interactive questionnaire",
	Run:   cmd.Mainify(askMain),
}

var askConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := askCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&askConfiguration.help, "help", "h", false, "Show help information")
}
