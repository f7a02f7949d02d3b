package main

import (
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/promptly-io/promptly/cmd"
	"github.com/promptly-io/promptly/pkg/configuration"
	"github.com/promptly-io/promptly/pkg/locale"
	"github.com/promptly-io/promptly/pkg/session"
)

// newSession creates a console session with on-disk defaults applied, locale
// overrides resolved, and cooperative cancellation wired to termination
// signals. Resolution precedence for the locale is flag, then environment,
// then configuration file, then the built-in default.
func newSession() (*session.Session, error) {
	// Create the session.
	s := session.NewConsole()

	// Apply on-disk defaults.
	c, err := configuration.Load()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load configuration")
	}
	if err := c.Apply(s); err != nil {
		return nil, errors.Wrap(err, "unable to apply configuration")
	}

	// Apply the environment override.
	if name := os.Getenv("PROMPTLY_LOCALE"); name != "" {
		l, err := locale.Resolve(name)
		if err != nil {
			return nil, errors.Wrap(err, "unable to resolve PROMPTLY_LOCALE")
		}
		s.SetLocale(l)
	}

	// Apply the flag override.
	if rootConfiguration.locale.l != nil {
		s.SetLocale(rootConfiguration.locale.l)
	}

	// Wire termination signals to cooperative cancellation. An in-progress
	// read isn't unblocked, but the loop aborts before the next one.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, cmd.TerminationSignals...)
	go func() {
		<-signals
		s.Cancel()
	}()

	// Success.
	return s, nil
}
