package convert

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/promptly-io/promptly/pkg/locale"
)

// errEmpty indicates that a raw response was empty for a kind that cannot
// represent the absence of a value.
var errEmpty = errors.New("empty response")

// Convert converts a raw response string into the shape indicated by the
// specified kind, using the specified locale for digit glyphs, separators, and
// layouts. An empty or whitespace-only response converts successfully (to the
// empty string) for KindString and fails for every other kind, since booleans,
// numbers, and dates cannot represent "no value". Conversion errors are
// recovered by the prompting loop through retry and are never shown to the
// user.
func Convert(raw string, kind Kind, l *locale.Locale) (interface{}, error) {
	// Trim surrounding whitespace. Leading and trailing spaces are never
	// significant for any of the built-in shapes.
	trimmed := strings.TrimSpace(raw)

	// Handle the empty case.
	if trimmed == "" {
		if kind == KindString {
			return "", nil
		}
		return nil, errEmpty
	}

	// Dispatch on kind.
	switch kind {
	case KindString:
		return raw, nil
	case KindBoolean:
		return convertBoolean(trimmed, l)
	case KindInteger:
		normalized, err := normalizeNumber(trimmed, l, false)
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(normalized, 10, 64)
		if err != nil {
			return nil, err
		}
		return value, nil
	case KindFloat:
		normalized, err := normalizeNumber(trimmed, l, true)
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return nil, err
		}
		return value, nil
	case KindDateTime:
		return convertDateTime(trimmed, l)
	default:
		return nil, errors.New("unknown target kind")
	}
}

// convertBoolean matches a response against the locale's boolean vocabulary.
func convertBoolean(raw string, l *locale.Locale) (interface{}, error) {
	// Normalize case.
	lowered := strings.ToLower(raw)

	// Check affirmative words.
	for _, word := range l.TrueWords {
		if lowered == word {
			return true, nil
		}
	}

	// Check negative words.
	for _, word := range l.FalseWords {
		if lowered == word {
			return false, nil
		}
	}

	// No match.
	return nil, errors.New("unrecognized boolean response")
}

// normalizeNumber transliterates a locale-formatted number into the ASCII form
// expected by strconv: native digits become ASCII digits, group separators are
// stripped, the locale's decimal separator becomes '.', and the locale's
// negative sign becomes '-'. Any other rune is an error.
func normalizeNumber(raw string, l *locale.Locale, fractional bool) (string, error) {
	var builder strings.Builder
	for index, r := range raw {
		if value, ok := l.DigitValue(r); ok {
			builder.WriteRune(rune('0' + value))
		} else if r == l.NegativeSign && index == 0 {
			builder.WriteRune('-')
		} else if r == l.DecimalSeparator && fractional {
			builder.WriteRune('.')
		} else if r == l.GroupSeparator {
			continue
		} else {
			return "", errors.New("unrecognized numeric glyph")
		}
	}
	return builder.String(), nil
}

// convertDateTime attempts each of the locale's layouts in order.
func convertDateTime(raw string, l *locale.Locale) (interface{}, error) {
	for _, layout := range l.Layouts() {
		if value, err := time.Parse(layout, raw); err == nil {
			return value, nil
		}
	}
	return nil, errors.New("unrecognized date/time format")
}
