package keystroke

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// SecretBuffer accumulates sensitive keystrokes in a byte buffer that is
// explicitly zeroed when wiped, avoiding plain-text duplication until the
// response is materialized. The backing store grows in place, so at most one
// plain-text copy (the materialized string) ever exists.
type SecretBuffer struct {
	// data holds the UTF-8 encoded response.
	data []byte
	// lengths records the encoded length of each buffered rune, enabling
	// rune-wise removal.
	lengths []int
}

// NewSecretBuffer creates an empty secret buffer with the specified initial
// capacity.
func NewSecretBuffer(capacity int) *SecretBuffer {
	return &SecretBuffer{
		data: make([]byte, 0, capacity),
	}
}

// Push appends a rune to the buffer.
func (b *SecretBuffer) Push(r rune) {
	var encoded [utf8.UTFMax]byte
	length := utf8.EncodeRune(encoded[:], r)
	b.data = append(b.data, encoded[:length]...)
	b.lengths = append(b.lengths, length)

	// Zero the stack copy.
	for e := range encoded {
		encoded[e] = 0
	}
}

// Pop removes the most recently pushed rune, zeroing its bytes. It returns
// false if the buffer is empty.
func (b *SecretBuffer) Pop() bool {
	if len(b.lengths) == 0 {
		return false
	}
	length := b.lengths[len(b.lengths)-1]
	b.lengths = b.lengths[:len(b.lengths)-1]
	for e := len(b.data) - length; e < len(b.data); e++ {
		b.data[e] = 0
	}
	b.data = b.data[:len(b.data)-length]
	return true
}

// Len returns the number of buffered runes.
func (b *SecretBuffer) Len() int {
	return len(b.lengths)
}

// Materialize converts the buffer contents to a plain string and wipes the
// buffer. It is intended to be called exactly once, when capture terminates.
func (b *SecretBuffer) Materialize() string {
	result := string(b.data)
	b.Wipe()
	return result
}

// Wipe zeroes the backing store and empties the buffer.
func (b *SecretBuffer) Wipe() {
	for e := range b.data[:cap(b.data)] {
		b.data[:cap(b.data)][e] = 0
	}
	b.data = b.data[:0]
	b.lengths = nil
}

// ReadMasked captures a response one keystroke at a time without ever echoing
// the real characters. When mask is non-zero, each accepted keystroke echoes
// the mask glyph instead; when mask is zero, nothing is echoed at all. Escape,
// tab, bare line feed, and null keystrokes are filtered: neither buffered nor
// echoed. Backspace removes the last buffered character and, when masking is
// enabled, erases the echoed mask glyph. Enter echoes a newline and returns
// the materialized response, wiping the secure buffer.
func ReadMasked(source Source, out io.Writer, mask rune) (string, error) {
	// Transition the source into capture state and defer its release.
	release, err := acquire(source)
	if err != nil {
		return "", err
	}
	defer release()

	// Create the secret buffer and ensure that it's wiped even on error paths.
	buffer := NewSecretBuffer(64)
	defer buffer.Wipe()

	// Capture keystrokes until enter.
	for {
		// Grab the next keystroke.
		key, err := source.ReadKey()
		if err != nil {
			return "", err
		}

		// Process it.
		switch key.Code {
		case CodeEnter:
			echo(out, "\n")
			return buffer.Materialize(), nil
		case CodeBackspace:
			if buffer.Pop() && mask != 0 {
				echo(out, "\b \b")
			}
		case CodeRune:
			// Only buffer printable characters.
			if !unicode.IsPrint(key.Rune) {
				continue
			}
			buffer.Push(key.Rune)
			if mask != 0 {
				echo(out, string(mask))
			}
		default:
			// Escape, tab, line feed, and null are filtered.
		}
	}
}
