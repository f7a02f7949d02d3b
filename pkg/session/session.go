// Package session implements interactive acquisition of validated, strongly
// typed values from a character stream, together with per-session response
// history and a registry of scheduled background callbacks.
//
// The foreground prompting loop is strictly single-threaded and blocks on each
// keystroke. Timer callbacks registered with the session's registry run on
// their own goroutines, fully concurrently with the blocked loop, and share
// the session's output sink without synchronization, so a firing timer can
// visually interleave with an in-progress prompt. This is an intentional,
// documented property: callers combining timers with prompts are responsible
// for avoiding collisions.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/google/uuid"

	"github.com/promptly-io/promptly/pkg/convert"
	"github.com/promptly-io/promptly/pkg/history"
	"github.com/promptly-io/promptly/pkg/keystroke"
	"github.com/promptly-io/promptly/pkg/locale"
	"github.com/promptly-io/promptly/pkg/logging"
	"github.com/promptly-io/promptly/pkg/timer"
)

var (
	// ErrCancelled indicates that the session's cancellation flag was observed
	// before a read began. It is terminal: the prompting loop never retries
	// after cancellation.
	ErrCancelled = errors.New("session cancelled")
	// ErrContinuationAborted indicates that a chain step requested that the
	// remainder of the chain be skipped. It is intended to be examined by the
	// immediate caller of the chain.
	ErrContinuationAborted = errors.New("continuation aborted")
)

// Session is an interactive prompting session. It owns its response history
// and timer registry, whose lifetimes are tied to the session's own. Aside
// from Cancel (and the timer registry), sessions are not safe for concurrent
// usage: prompting is a single-threaded foreground activity.
type Session struct {
	// id is the session's unique instance identifier.
	id string
	// source provides keystrokes.
	source keystroke.Source
	// output is the primary character sink.
	output io.Writer
	// errorOutput is the parallel sink used only for explicit error writes.
	errorOutput io.Writer
	// current is the session's current locale.
	current *locale.Locale
	// kindLocales maps target shapes to locale overrides.
	kindLocales map[convert.Kind]*locale.Locale
	// colors is the push/pop display color stack.
	colors []*color.Color
	// cancelled is the cooperative cancellation flag. It is accessed
	// atomically since cancellation typically originates on a signal-handling
	// goroutine.
	cancelled uint32
	// storeAll indicates that every successful acquisition should be committed
	// to history, even without a per-call storage request.
	storeAll bool
	// history is the session's response history.
	history *history.History
	// timers is the session's timer registry.
	timers *timer.Registry
	// logger is the session's logger.
	logger *logging.Logger
}

// New creates a session reading keystrokes from the specified source and
// writing to the specified sinks. The session starts with the default locale,
// an empty history, and an empty timer registry.
func New(source keystroke.Source, output, errorOutput io.Writer) *Session {
	id := uuid.New().String()
	return &Session{
		id:          id,
		source:      source,
		output:      output,
		errorOutput: errorOutput,
		current:     locale.Default(),
		kindLocales: make(map[convert.Kind]*locale.Locale),
		history:     history.NewHistory(),
		timers:      timer.NewRegistry(),
		logger:      logging.RootLogger.Sublogger("session"),
	}
}

// NewConsole creates a session on the process standard streams, preferring
// raw keystroke capture when standard input is a terminal and falling back to
// cooked reads otherwise (e.g. when input is piped).
func NewConsole() *Session {
	var source keystroke.Source
	if terminal, err := keystroke.NewTerminalSource(os.Stdin); err == nil {
		source = terminal
	} else {
		source = keystroke.NewReaderSource(os.Stdin)
	}
	return New(source, os.Stdout, os.Stderr)
}

// ID returns the session's unique instance identifier.
func (s *Session) ID() string {
	return s.id
}

// SetLocale sets the session's current locale.
func (s *Session) SetLocale(l *locale.Locale) {
	s.current = l
}

// Locale returns the session's current locale.
func (s *Session) Locale() *locale.Locale {
	return s.current
}

// SetLocaleForKind registers a locale override for the specified target shape,
// allowing (for example) numbers to be parsed with different conventions than
// dates. A nil locale removes the override.
func (s *Session) SetLocaleForKind(kind convert.Kind, l *locale.Locale) {
	if l == nil {
		delete(s.kindLocales, kind)
		return
	}
	s.kindLocales[kind] = l
}

// localeFor returns the locale used for the specified target shape: the
// registered override if one exists, the session's current locale otherwise.
func (s *Session) localeFor(kind convert.Kind) *locale.Locale {
	if l, ok := s.kindLocales[kind]; ok {
		return l
	}
	return s.current
}

// SetStoreAll sets the session-wide storage flag. When set, every successful
// acquisition is committed to history.
func (s *Session) SetStoreAll(storeAll bool) {
	s.storeAll = storeAll
}

// Cancel sets the session's cancellation flag. The flag is observed
// cooperatively at the start of each read; an already-in-progress blocking
// read is not forcibly unblocked. Cancel is safe to invoke from any goroutine,
// including signal handlers.
func (s *Session) Cancel() {
	atomic.StoreUint32(&s.cancelled, 1)
}

// Cancelled indicates whether or not cancellation has been requested.
func (s *Session) Cancelled() bool {
	return atomic.LoadUint32(&s.cancelled) == 1
}

// History returns the session's response history.
func (s *Session) History() *history.History {
	return s.history
}

// ClearHistory removes all stored responses.
func (s *Session) ClearHistory() {
	s.history.Clear()
}

// Timers returns the session's timer registry.
func (s *Session) Timers() *timer.Registry {
	return s.timers
}

// PushColor pushes a display color onto the session's color stack. Prompt
// messages are written using the top of the stack.
func (s *Session) PushColor(attributes ...color.Attribute) {
	s.colors = append(s.colors, color.New(attributes...))
}

// PopColor pops the most recently pushed display color, restoring whatever
// was in effect before the matching PushColor.
func (s *Session) PopColor() {
	if len(s.colors) > 0 {
		s.colors = s.colors[:len(s.colors)-1]
	}
}

// currentColor returns the top of the color stack, or nil if no color is set.
func (s *Session) currentColor() *color.Color {
	if len(s.colors) == 0 {
		return nil
	}
	return s.colors[len(s.colors)-1]
}

// WriteMessage writes a message line to the session's output sink using the
// current display color.
func (s *Session) WriteMessage(message string) {
	if c := s.currentColor(); c != nil {
		c.Fprintln(s.output, message)
	} else {
		fmt.Fprintln(s.output, message)
	}
}

// WriteError writes an error to the session's error sink. This is the only
// path that writes to the error sink.
func (s *Session) WriteError(err error) {
	fmt.Fprintln(s.errorOutput, "Error:", err)
}

// Close shuts the session down, stopping and removing all registered timers.
func (s *Session) Close() error {
	removed := s.timers.Clear()
	s.logger.Debugf("session closed, %d timer(s) removed", removed)
	return nil
}
