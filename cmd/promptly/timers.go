package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/spf13/cobra"

	"github.com/promptly-io/promptly/cmd"
	"github.com/promptly-io/promptly/pkg/session"
	"github.com/promptly-io/promptly/pkg/timer"
)

func timersMain(command *cobra.Command, arguments []string) error {
	// Create a session and defer its shutdown.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Register a repeating heartbeat. Its output interleaves freely with the
	// prompt below, since the registry performs no synchronization over the
	// shared output sink.
	start := time.Now()
	if _, err := s.Timers().Add(func(context timer.Context) {
		fmt.Printf("\n[%s] tick %d (running since %s)\n", context.Name, context.Ticks, humanize.Time(start))
	}, timersConfiguration.interval, "heartbeat", true); err != nil {
		return err
	}

	// Register a one-shot reminder, which retires itself after firing.
	if _, err := s.Timers().Add(func(context timer.Context) {
		fmt.Printf("\n[%s] fired once at %s and is now gone\n", context.Name, context.SignalTime.Format(time.Kitchen))
	}, 3*timersConfiguration.interval/2, "reminder", false); err != nil {
		return err
	}

	// Block on a prompt while the timers fire.
	if _, err := s.AskString(&session.Options{Message: "Press enter to stop... "}); err != nil {
		return err
	}

	// Stop everything.
	removed := s.Timers().Clear()
	fmt.Printf("Stopped %d timer(s)\n", removed)

	// Success.
	return nil
}

var timersCommand = &cobra.Command{
	Use:   "timers",
	Short: "Demonstrate background timers interleaving with a prompt",
	Run:   cmd.Mainify(timersMain),
}

var timersConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// interval is the heartbeat interval.
	interval time.Duration
}

func init() {
	// Grab a handle for the command line flags.
	flags := timersCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&timersConfiguration.help, "help", "h", false, "Show help information")

	// Wire up timer flags.
	flags.DurationVarP(&timersConfiguration.interval, "interval", "i", time.Second, "Heartbeat interval")
}
