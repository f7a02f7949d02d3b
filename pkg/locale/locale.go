package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale describes the input-relevant conventions of a culture: the digit
// glyphs it uses, the separators and signs it recognizes in numbers, the words
// it accepts as boolean answers, and the date/time layouts it understands.
// Locale values are shared and must be treated as immutable.
type Locale struct {
	// Tag is the BCP 47 language tag for the locale.
	Tag language.Tag
	// Digits are the native digit glyphs for values zero through nine.
	Digits [10]rune
	// DecimalSeparator is the glyph separating the integral and fractional
	// parts of a number.
	DecimalSeparator rune
	// GroupSeparator is the glyph used to group digits in large numbers. It is
	// tolerated (and stripped) during conversion but never required.
	GroupSeparator rune
	// NegativeSign is the glyph prefixed to negative numbers.
	NegativeSign rune
	// TrueWords are the responses accepted as an affirmative boolean answer.
	// Matching is case-insensitive.
	TrueWords []string
	// FalseWords are the responses accepted as a negative boolean answer.
	// Matching is case-insensitive.
	FalseWords []string
	// DateTimeLayouts are the time.Parse layouts attempted (in order) when
	// converting date/time responses.
	DateTimeLayouts []string
}

// universalLayouts are date/time layouts accepted by every locale, attempted
// after the locale's own layouts.
var universalLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// latinDigits are the ASCII digit glyphs used by Latin-script locales.
var latinDigits = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// arabicIndicDigits are the Arabic-Indic digit glyphs (U+0660 through U+0669).
var arabicIndicDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// catalog is the set of built-in locales. The first entry is the default and
// entry order determines matcher priority.
var catalog = []*Locale{
	{
		Tag:              language.AmericanEnglish,
		Digits:           latinDigits,
		DecimalSeparator: '.',
		GroupSeparator:   ',',
		NegativeSign:     '-',
		TrueWords:        []string{"yes", "y", "true", "t", "1"},
		FalseWords:       []string{"no", "n", "false", "f", "0"},
		DateTimeLayouts:  []string{"1/2/2006 15:04:05", "1/2/2006 15:04", "1/2/2006"},
	},
	{
		Tag:              language.BritishEnglish,
		Digits:           latinDigits,
		DecimalSeparator: '.',
		GroupSeparator:   ',',
		NegativeSign:     '-',
		TrueWords:        []string{"yes", "y", "true", "t", "1"},
		FalseWords:       []string{"no", "n", "false", "f", "0"},
		DateTimeLayouts:  []string{"2/1/2006 15:04:05", "2/1/2006 15:04", "2/1/2006"},
	},
	{
		Tag:              language.German,
		Digits:           latinDigits,
		DecimalSeparator: ',',
		GroupSeparator:   '.',
		NegativeSign:     '-',
		TrueWords:        []string{"ja", "j", "wahr", "1"},
		FalseWords:       []string{"nein", "n", "falsch", "0"},
		DateTimeLayouts:  []string{"02.01.2006 15:04:05", "02.01.2006 15:04", "02.01.2006", "2.1.2006"},
	},
	{
		Tag:              language.French,
		Digits:           latinDigits,
		DecimalSeparator: ',',
		GroupSeparator:   ' ',
		NegativeSign:     '-',
		TrueWords:        []string{"oui", "o", "vrai", "1"},
		FalseWords:       []string{"non", "n", "faux", "0"},
		DateTimeLayouts:  []string{"02/01/2006 15:04:05", "02/01/2006 15:04", "02/01/2006", "2/1/2006"},
	},
	{
		Tag:              language.Swedish,
		Digits:           latinDigits,
		DecimalSeparator: ',',
		GroupSeparator:   ' ',
		NegativeSign:     '-',
		TrueWords:        []string{"ja", "j", "sant", "1"},
		FalseWords:       []string{"nej", "n", "falskt", "0"},
		DateTimeLayouts:  []string{"2006-01-02 15:04:05", "2006-01-02 15:04"},
	},
	{
		Tag:              language.MustParse("ar-EG"),
		Digits:           arabicIndicDigits,
		DecimalSeparator: '٫',
		GroupSeparator:   '٬',
		NegativeSign:     '-',
		TrueWords:        []string{"نعم", "1", "١"},
		FalseWords:       []string{"لا", "0", "٠"},
		DateTimeLayouts:  []string{"02/01/2006 15:04:05", "02/01/2006"},
	},
}

// matcher matches arbitrary language tags against the catalog.
var matcher language.Matcher

func init() {
	// Build the matcher tag list in catalog order.
	tags := make([]language.Tag, len(catalog))
	for c, l := range catalog {
		tags[c] = l.Tag
	}

	// Initialize the matcher.
	matcher = language.NewMatcher(tags)
}

// Default returns the default locale (American English).
func Default() *Locale {
	return catalog[0]
}

// Resolve resolves a BCP 47 language tag name to the closest built-in locale.
// An empty name resolves to the default locale. An unparseable name is an
// error; a parseable but unknown name resolves to the closest catalog entry
// according to the matcher.
func Resolve(name string) (*Locale, error) {
	// Handle the empty case.
	if name == "" {
		return Default(), nil
	}

	// Parse the tag.
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("unable to parse locale name: %w", err)
	}

	// Match against the catalog. The matcher always yields a valid index, so
	// lookup cannot fail.
	_, index, _ := matcher.Match(tag)
	return catalog[index], nil
}

// DigitValue returns the numeric value of a rune if it is one of the locale's
// native digit glyphs.
func (l *Locale) DigitValue(r rune) (int, bool) {
	for value, digit := range l.Digits {
		if r == digit {
			return value, true
		}
	}
	return 0, false
}

// Layouts returns the date/time layouts accepted by the locale, with the
// locale's own layouts taking precedence over the universal fallbacks.
func (l *Locale) Layouts() []string {
	result := make([]string, 0, len(l.DateTimeLayouts)+len(universalLayouts))
	result = append(result, l.DateTimeLayouts...)
	result = append(result, universalLayouts...)
	return result
}
