package keystroke

import (
	"io"
	"unicode"
)

// ReadLine captures a plain echoed line one keystroke at a time. Printable
// characters are buffered and echoed as-is, backspace edits the tail of the
// buffer, and enter echoes a newline and returns the accumulated text. There
// is no in-line cursor movement or history browsing. Accepted characters are
// echoed to out, which may be nil to suppress echo.
func ReadLine(source Source, out io.Writer) (string, error) {
	// Transition the source into capture state and defer its release.
	release, err := acquire(source)
	if err != nil {
		return "", err
	}
	defer release()

	// Capture keystrokes until enter.
	var buffer []rune
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
			return string(buffer), nil
		case CodeBackspace:
			if len(buffer) == 0 {
				continue
			}
			buffer = buffer[:len(buffer)-1]
			echo(out, "\b \b")
		case CodeRune:
			if !unicode.IsPrint(key.Rune) {
				continue
			}
			buffer = append(buffer, key.Rune)
			echo(out, string(key.Rune))
		default:
			// All other keystrokes are ignored.
		}
	}
}
