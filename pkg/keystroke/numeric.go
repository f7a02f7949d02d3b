package keystroke

import (
	"io"

	"github.com/promptly-io/promptly/pkg/locale"
)

// ReadNumeric captures a numeric response one keystroke at a time, accepting
// only the locale's native digit glyphs, at most one leading negative sign
// (when negatives are allowed), and at most one decimal separator (when
// fractional values are allowed). Every other keystroke is silently ignored:
// not echoed, not buffered. Generic line reading cannot enforce this, so the
// policy has to intercept each keystroke before it reaches the display.
//
// Backspace removes the last accepted character; when that character was the
// sign or the separator, its "already present" flag is cleared so it can be
// entered again. Enter echoes a newline and returns the accumulated buffer,
// which may be empty (meaning "no input"). Accepted characters are echoed to
// out, which may be nil to suppress echo.
func ReadNumeric(source Source, out io.Writer, l *locale.Locale, allowNegative, allowFractional bool) (string, error) {
	// Transition the source into capture state and defer its release.
	release, err := acquire(source)
	if err != nil {
		return "", err
	}
	defer release()

	// Capture keystrokes until enter.
	var buffer []rune
	var signUsed, separatorUsed bool
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
			// Ignore backspace on an empty buffer.
			if len(buffer) == 0 {
				continue
			}

			// Remove the last accepted character, clearing the corresponding
			// flag if it was the sign or the separator.
			removed := buffer[len(buffer)-1]
			buffer = buffer[:len(buffer)-1]
			if removed == l.NegativeSign {
				signUsed = false
			} else if removed == l.DecimalSeparator {
				separatorUsed = false
			}
			echo(out, "\b \b")
		case CodeRune:
			// Apply the acceptance policy.
			r := key.Rune
			if _, ok := l.DigitValue(r); ok {
				// Digits are always accepted.
			} else if r == l.NegativeSign {
				// The sign is only accepted as the very first character.
				if !allowNegative || signUsed || len(buffer) != 0 {
					continue
				}
				signUsed = true
			} else if r == l.DecimalSeparator {
				if !allowFractional || separatorUsed {
					continue
				}
				separatorUsed = true
			} else {
				continue
			}

			// Buffer and echo the accepted character.
			buffer = append(buffer, r)
			echo(out, string(r))
		default:
			// All other keystrokes are ignored.
		}
	}
}

// echo writes text to an echo sink, tolerating a nil sink.
func echo(out io.Writer, text string) {
	if out != nil {
		io.WriteString(out, text)
	}
}
