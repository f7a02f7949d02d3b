package keystroke

import (
	"bufio"
	"io"
)

// ReaderSource adapts an arbitrary io.Reader (such as a pipe, a file, or an
// in-memory buffer) into a keystroke source. Line feeds and carriage returns
// both classify as enter, which matches cooked-mode input devices.
type ReaderSource struct {
	// reader is the buffered rune reader.
	reader *bufio.Reader
}

// NewReaderSource creates a keystroke source reading from the specified
// reader.
func NewReaderSource(reader io.Reader) *ReaderSource {
	return &ReaderSource{
		reader: bufio.NewReader(reader),
	}
}

// ReadKey implements Source.ReadKey.
func (s *ReaderSource) ReadKey() (Key, error) {
	// Read the next rune.
	r, _, err := s.reader.ReadRune()
	if err != nil {
		return Key{}, err
	}

	// Classify it.
	switch r {
	case '\r', '\n':
		return Key{Code: CodeEnter}, nil
	case '\b', 0x7f:
		return Key{Code: CodeBackspace}, nil
	case 0x1b:
		return Key{Code: CodeEscape}, nil
	case '\t':
		return Key{Code: CodeTab}, nil
	case 0x00:
		return Key{Code: CodeNull}, nil
	default:
		return Key{Code: CodeRune, Rune: r}, nil
	}
}
