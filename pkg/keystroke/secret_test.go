package keystroke

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// keyScript is a keystroke source fed from a fixed key sequence, allowing
// tests to exercise keystrokes (such as bare line feeds) that cooked-mode
// reader sources never produce.
type keyScript struct {
	keys []Key
}

// ReadKey implements Source.ReadKey.
func (s *keyScript) ReadKey() (Key, error) {
	if len(s.keys) == 0 {
		return Key{}, io.EOF
	}
	key := s.keys[0]
	s.keys = s.keys[1:]
	return key, nil
}

// TestSecretBuffer tests rune-wise push/pop and wipe-on-materialize.
func TestSecretBuffer(t *testing.T) {
	// Build up a response with a multi-byte rune.
	buffer := NewSecretBuffer(8)
	buffer.Push('p')
	buffer.Push('ä')
	buffer.Push('s')
	buffer.Push('s')

	// Pop a rune and verify the count.
	if !buffer.Pop() {
		t.Fatal("pop of non-empty buffer failed")
	}
	if buffer.Len() != 3 {
		t.Error("buffer length does not match expected:", buffer.Len(), "!= 3")
	}

	// Materialize and verify the contents.
	if materialized := buffer.Materialize(); materialized != "päs" {
		t.Error("materialized response does not match expected:", materialized, "!= päs")
	}

	// Verify that materialization wiped the buffer.
	if buffer.Len() != 0 {
		t.Error("buffer not empty after materialization")
	}
	if materialized := buffer.Materialize(); materialized != "" {
		t.Error("second materialization yielded residual data:", materialized)
	}
}

// TestSecretBufferPopEmpty tests that popping an empty buffer is a no-op.
func TestSecretBufferPopEmpty(t *testing.T) {
	buffer := NewSecretBuffer(8)
	if buffer.Pop() {
		t.Error("pop of empty buffer unexpectedly succeeded")
	}
}

// TestReadMasked tests masked capture with control character filtering.
func TestReadMasked(t *testing.T) {
	// Script a capture including filtered keystrokes: escape, tab, a bare line
	// feed, and a null, none of which should be buffered or echoed.
	script := &keyScript{keys: []Key{
		{Code: CodeEscape},
		{Code: CodeRune, Rune: 's'},
		{Code: CodeTab},
		{Code: CodeRune, Rune: 'e'},
		{Code: CodeLineFeed},
		{Code: CodeRune, Rune: 'c'},
		{Code: CodeNull},
		{Code: CodeEnter},
	}}

	// Perform the capture.
	output := &bytes.Buffer{}
	response, err := ReadMasked(script, output, '*')
	if err != nil {
		t.Fatal("masked capture failed:", err)
	}

	// Verify the response and that only mask glyphs were echoed.
	if response != "sec" {
		t.Error("captured response does not match expected:", response, "!= sec")
	}
	if echoed := output.String(); echoed != "***\n" {
		t.Errorf("echoed output does not match expected: %q != %q", echoed, "***\n")
	}
}

// TestReadMaskedBackspace tests that backspace erases the echoed mask glyph.
func TestReadMaskedBackspace(t *testing.T) {
	// Perform a capture with a correction.
	output := &bytes.Buffer{}
	response, err := ReadMasked(NewReaderSource(strings.NewReader("ab\bc\n")), output, '*')
	if err != nil {
		t.Fatal("masked capture failed:", err)
	}

	// Verify the response and echo stream.
	if response != "ac" {
		t.Error("captured response does not match expected:", response, "!= ac")
	}
	if echoed := output.String(); echoed != "**\b \b*\n" {
		t.Errorf("echoed output does not match expected: %q != %q", echoed, "**\b \b*\n")
	}
}

// TestReadMaskedNoEcho tests that a zero mask suppresses echo entirely.
func TestReadMaskedNoEcho(t *testing.T) {
	// Perform a capture with no mask glyph.
	output := &bytes.Buffer{}
	response, err := ReadMasked(NewReaderSource(strings.NewReader("hunter2\n")), output, 0)
	if err != nil {
		t.Fatal("masked capture failed:", err)
	}

	// Verify the response and that only the terminating newline was echoed.
	if response != "hunter2" {
		t.Error("captured response does not match expected:", response, "!= hunter2")
	}
	if echoed := output.String(); echoed != "\n" {
		t.Errorf("echoed output does not match expected: %q != %q", echoed, "\n")
	}
}
