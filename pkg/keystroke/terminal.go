package keystroke

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/mattn/go-isatty"

	"golang.org/x/term"
)

// TerminalSource reads keystrokes directly from a terminal device. It holds
// the terminal in raw mode for the duration of a capture (via Holder), which
// is the only way to observe individual keystrokes before the line discipline
// assembles and echoes them. In raw mode, enter arrives as a carriage return
// and a bare line feed classifies separately.
type TerminalSource struct {
	// file is the underlying terminal device.
	file *os.File
	// state is the saved terminal state while raw mode is held.
	state *term.State
}

// NewTerminalSource creates a keystroke source for the specified file, which
// must be a terminal device.
func NewTerminalSource(file *os.File) (*TerminalSource, error) {
	// Verify that we're dealing with a terminal.
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return nil, errors.New("file is not a terminal")
	}

	// Success.
	return &TerminalSource{file: file}, nil
}

// Acquire implements Holder.Acquire by putting the terminal into raw mode.
func (s *TerminalSource) Acquire() error {
	state, err := term.MakeRaw(int(s.file.Fd()))
	if err != nil {
		return errors.Wrap(err, "unable to enter raw terminal mode")
	}
	s.state = state
	return nil
}

// Release implements Holder.Release by restoring the terminal state saved by
// Acquire.
func (s *TerminalSource) Release() error {
	if s.state == nil {
		return nil
	}
	state := s.state
	s.state = nil
	if err := term.Restore(int(s.file.Fd()), state); err != nil {
		return errors.Wrap(err, "unable to restore terminal mode")
	}
	return nil
}

// ReadKey implements Source.ReadKey.
func (s *TerminalSource) ReadKey() (Key, error) {
	// Read the first byte of the keystroke.
	var buffer [utf8.UTFMax]byte
	if _, err := io.ReadFull(s.file, buffer[:1]); err != nil {
		return Key{}, errors.Wrap(err, "unable to read keystroke")
	}

	// Classify single-byte control keystrokes.
	switch buffer[0] {
	case '\r':
		return Key{Code: CodeEnter}, nil
	case '\n':
		return Key{Code: CodeLineFeed}, nil
	case '\b', 0x7f:
		return Key{Code: CodeBackspace}, nil
	case 0x1b:
		return Key{Code: CodeEscape}, nil
	case '\t':
		return Key{Code: CodeTab}, nil
	case 0x00:
		return Key{Code: CodeNull}, nil
	}

	// Handle ASCII directly.
	if buffer[0] < utf8.RuneSelf {
		return Key{Code: CodeRune, Rune: rune(buffer[0])}, nil
	}

	// Otherwise read the remainder of the UTF-8 sequence. Leading bits of the
	// first byte encode the sequence length.
	length := 1
	for b := buffer[0] << 1; b&0x80 != 0; b <<= 1 {
		length++
	}
	if length < 2 || length > utf8.UTFMax {
		return Key{}, errors.New("invalid keystroke encoding")
	}
	if _, err := io.ReadFull(s.file, buffer[1:length]); err != nil {
		return Key{}, errors.Wrap(err, "unable to read keystroke continuation")
	}

	// Decode the sequence.
	r, _ := utf8.DecodeRune(buffer[:length])
	if r == utf8.RuneError {
		return Key{}, errors.New("invalid keystroke encoding")
	}

	// Success.
	return Key{Code: CodeRune, Rune: r}, nil
}
