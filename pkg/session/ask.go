package session

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/promptly-io/promptly/pkg/convert"
	"github.com/promptly-io/promptly/pkg/keystroke"
)

// errorColor renders validation messages.
var errorColor = color.New(color.FgRed)

// Options configures a single acquisition.
type Options struct {
	// Message is the prompt text shown to the user.
	Message string
	// Key is the history key for the acquisition. It defaults to Message.
	Key string
	// ID is the identifier recorded with a stored response. It defaults to
	// Message.
	ID string
	// Store requests that the successful response be committed to history.
	Store bool
	// Mask requests masked capture: real characters are never echoed.
	Mask bool
	// MaskRune is the glyph echoed in place of masked characters. It defaults
	// to '*' when Mask is set; a negative value suppresses echo entirely.
	MaskRune rune
	// NonNegative restricts numeric capture to non-negative values by
	// rejecting the negative sign at the keystroke level.
	NonNegative bool
	// ValidationMessage is the message written when a response is rejected.
	// When empty, a shape-appropriate default is used. Setting it also makes
	// empty input (with no recallable prior response) a rejection for string
	// shapes.
	ValidationMessage string
	// Validate is an optional predicate applied to the converted value.
	// Returning false rejects the response and retries.
	Validate func(interface{}) bool
	// Convert is an optional caller-supplied converter. When present, it takes
	// precedence over the built-in shape-driven conversion and signals failure
	// through its error return.
	Convert func(raw string) (interface{}, error)
}

// Ask acquires a single validated value of the specified target shape. It
// writes the prompt message (annotated with any prior stored response for the
// same key), reads raw input under the shape's keystroke policy, converts and
// validates it, and repeats with a validation message until a valid value is
// produced. There is no retry limit: interactive sessions assume a human will
// eventually comply or interrupt the process.
//
// Empty input recalls the prior stored response for the key, if one exists,
// without re-running conversion or validation. On success, the response is
// committed to history when the session-wide store flag is set, when the call
// requested storage, or when a prior response already existed for the key.
//
// Ask fails with ErrCancelled if the session's cancellation flag is observed
// before a read begins, and passes through input device failures. Conversion
// and validation failures are never surfaced; only the validation message is
// shown.
func (s *Session) Ask(kind convert.Kind, options *Options) (interface{}, error) {
	// Normalize options.
	if options == nil {
		options = &Options{}
	}
	key := options.Key
	if key == "" {
		key = options.Message
	}
	mask := options.MaskRune
	if mask == 0 {
		mask = '*'
	} else if mask < 0 {
		mask = 0
	}

	// Look up any prior response for the key.
	prior, hasPrior := s.history.Lookup(key)

	// Write the prompt message, annotated with the prior response unless the
	// capture is masked (a secret must not round-trip through the display).
	if options.Message != "" {
		if hasPrior && !options.Mask {
			s.writePrompt(fmt.Sprintf("%s[%v] ", options.Message, prior.Response))
		} else {
			s.writePrompt(options.Message)
		}
	}

	// Run the read/convert/validate loop.
	for {
		// Observe the cancellation flag before entering a read.
		if s.Cancelled() {
			return nil, ErrCancelled
		}

		// Read raw input under the shape's keystroke policy.
		var raw string
		var err error
		if options.Mask {
			raw, err = keystroke.ReadMasked(s.source, s.output, mask)
		} else if kind.Numeric() {
			raw, err = keystroke.ReadNumeric(
				s.source, s.output, s.localeFor(kind),
				!options.NonNegative, kind.Fractional(),
			)
		} else {
			raw, err = keystroke.ReadLine(s.source, s.output)
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read response: %w", err)
		}

		// Empty input recalls the prior response without re-conversion or
		// re-validation.
		empty := strings.TrimSpace(raw) == ""
		if empty && hasPrior {
			s.logger.Debugf("recalled prior response for key %q", key)
			return prior.Response, nil
		}

		// An explicit validation message makes empty input a rejection even
		// for shapes that would otherwise convert it successfully.
		if empty && options.ValidationMessage != "" {
			s.retry(kind, options)
			continue
		}

		// Convert, with any caller-supplied converter taking precedence.
		var value interface{}
		if options.Convert != nil {
			value, err = options.Convert(raw)
		} else {
			value, err = convert.Convert(raw, kind, s.localeFor(kind))
		}
		if err != nil {
			s.logger.Debugf("conversion failed for key %q: %v", key, err)
			s.retry(kind, options)
			continue
		}

		// Apply the caller's validator.
		if options.Validate != nil && !options.Validate(value) {
			s.logger.Debugf("validation rejected response for key %q", key)
			s.retry(kind, options)
			continue
		}

		// Accept: commit and return.
		s.commit(key, options, value, hasPrior)
		return value, nil
	}
}

// writePrompt writes prompt text (without a trailing newline) using the
// current display color.
func (s *Session) writePrompt(text string) {
	if c := s.currentColor(); c != nil {
		c.Fprint(s.output, text)
	} else {
		fmt.Fprint(s.output, text)
	}
}

// retry writes the validation message for a rejected response, falling back to
// the shape-appropriate default when the caller supplied none.
func (s *Session) retry(kind convert.Kind, options *Options) {
	message := options.ValidationMessage
	if message == "" {
		message = convert.DefaultRetryMessage(kind)
	}
	fmt.Fprintln(s.output, errorColor.Sprint(message))
}

// commit applies the storage rules for an accepted response: commit happens
// when the session-wide store flag is set, when the call requested storage, or
// when a prior response already existed for the key. A new value equal to its
// type's zero value never displaces an existing stored response, so an empty
// recall cannot silently blank a previously good answer. Whether that rule
// should also exclude legitimate zero-valued answers (an age of 0) is an open
// behavioral question inherited from the design; it is preserved as observed.
// Masked acquisitions are only committed on an explicit per-call request,
// since stored responses reappear in default annotations.
func (s *Session) commit(key string, options *Options, value interface{}, hasPrior bool) {
	// Apply the masked-capture restriction.
	if options.Mask && !options.Store {
		return
	}

	// Determine whether or not storage applies at all.
	if !s.storeAll && !options.Store && !hasPrior {
		return
	}

	// Apply the zero-value overwrite guard.
	if hasPrior && isZeroValue(value) {
		return
	}

	// Commit.
	s.history.Store(key, options.Message, value, options.ID)
}

// isZeroValue indicates whether or not a value equals the zero value of its
// dynamic type. Caller-supplied converters can produce arbitrary types, so
// this check uses reflection rather than shape classification.
func isZeroValue(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}

// AskString acquires a string response.
func (s *Session) AskString(options *Options) (string, error) {
	value, err := s.Ask(convert.KindString, options)
	if err != nil {
		return "", err
	}
	result, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("response has unexpected type %T", value)
	}
	return result, nil
}

// AskInt acquires an integral numeric response using digit-constrained
// keystroke capture.
func (s *Session) AskInt(options *Options) (int64, error) {
	value, err := s.Ask(convert.KindInteger, options)
	if err != nil {
		return 0, err
	}
	result, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("response has unexpected type %T", value)
	}
	return result, nil
}

// AskFloat acquires a floating-point numeric response using digit-constrained
// keystroke capture.
func (s *Session) AskFloat(options *Options) (float64, error) {
	value, err := s.Ask(convert.KindFloat, options)
	if err != nil {
		return 0, err
	}
	result, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("response has unexpected type %T", value)
	}
	return result, nil
}

// AskBool acquires a boolean response.
func (s *Session) AskBool(options *Options) (bool, error) {
	value, err := s.Ask(convert.KindBoolean, options)
	if err != nil {
		return false, err
	}
	result, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("response has unexpected type %T", value)
	}
	return result, nil
}

// AskTime acquires a date/time response.
func (s *Session) AskTime(options *Options) (time.Time, error) {
	value, err := s.Ask(convert.KindDateTime, options)
	if err != nil {
		return time.Time{}, err
	}
	result, ok := value.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("response has unexpected type %T", value)
	}
	return result, nil
}

// AskSecret acquires a masked string response. The real characters are never
// echoed and the in-memory capture buffer is wiped once the response is
// materialized.
func (s *Session) AskSecret(options *Options) (string, error) {
	if options == nil {
		options = &Options{}
	}
	masked := *options
	masked.Mask = true
	return s.AskString(&masked)
}
