package session

import (
	"errors"
)

// Chain sequences dependent acquisitions with explicit short-circuiting: once
// a step fails, subsequent steps are skipped and the first error is retained
// for the caller. A step that wants to skip the remainder of the chain without
// reporting a hard failure returns ErrContinuationAborted, which the
// chain's immediate caller can distinguish via Aborted. This replaces
// raising-and-catching a sentinel as control flow.
type Chain struct {
	// session is the underlying session.
	session *Session
	// err is the first error returned by a step, if any.
	err error
}

// Chain starts a new acquisition chain on the session.
func (s *Session) Chain() *Chain {
	return &Chain{session: s}
}

// Do runs a step unless the chain has already short-circuited.
func (c *Chain) Do(step func(*Session) error) *Chain {
	if c.err != nil {
		return c
	}
	if err := step(c.session); err != nil {
		c.err = err
	}
	return c
}

// AskString acquires a string response into result.
func (c *Chain) AskString(options *Options, result *string) *Chain {
	return c.Do(func(s *Session) error {
		value, err := s.AskString(options)
		if err != nil {
			return err
		}
		*result = value
		return nil
	})
}

// AskInt acquires an integral numeric response into result.
func (c *Chain) AskInt(options *Options, result *int64) *Chain {
	return c.Do(func(s *Session) error {
		value, err := s.AskInt(options)
		if err != nil {
			return err
		}
		*result = value
		return nil
	})
}

// AskBool acquires a boolean response into result.
func (c *Chain) AskBool(options *Options, result *bool) *Chain {
	return c.Do(func(s *Session) error {
		value, err := s.AskBool(options)
		if err != nil {
			return err
		}
		*result = value
		return nil
	})
}

// Err returns the error that short-circuited the chain, if any.
func (c *Chain) Err() error {
	return c.err
}

// Aborted indicates whether or not the chain was short-circuited by an
// explicit continuation abort rather than a hard failure.
func (c *Chain) Aborted() bool {
	return errors.Is(c.err, ErrContinuationAborted)
}
