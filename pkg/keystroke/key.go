package keystroke

// Code classifies a keystroke.
type Code uint8

const (
	// CodeRune indicates an ordinary character keystroke.
	CodeRune Code = iota
	// CodeEnter indicates the enter/return keystroke that terminates capture.
	CodeEnter
	// CodeBackspace indicates a backspace or delete keystroke.
	CodeBackspace
	// CodeEscape indicates the escape keystroke.
	CodeEscape
	// CodeTab indicates the tab keystroke.
	CodeTab
	// CodeLineFeed indicates a bare line feed, as distinct from enter. It only
	// arises on raw terminals, where enter arrives as a carriage return.
	CodeLineFeed
	// CodeNull indicates a null keystroke.
	CodeNull
)

// Key represents a single keystroke. Rune is only meaningful when Code is
// CodeRune.
type Key struct {
	// Code is the keystroke classification.
	Code Code
	// Rune is the character for ordinary keystrokes.
	Rune rune
}

// Source is the interface to which keystroke providers must adhere. Reads
// block until a keystroke is available.
type Source interface {
	// ReadKey reads a single keystroke, returning an error if the underlying
	// device fails or is exhausted.
	ReadKey() (Key, error)
}

// Holder is an optional interface for sources that need to hold platform state
// (such as raw terminal mode) across an entire capture. Capture policies
// acquire before the first keystroke and release after capture terminates.
type Holder interface {
	// Acquire establishes any state needed for keystroke capture.
	Acquire() error
	// Release restores state established by Acquire.
	Release() error
}

// acquire transitions a source into capture state if it requires one, and
// returns the corresponding release function.
func acquire(source Source) (func(), error) {
	holder, ok := source.(Holder)
	if !ok {
		return func() {}, nil
	}
	if err := holder.Acquire(); err != nil {
		return nil, err
	}
	return func() {
		holder.Release()
	}, nil
}
