package keystroke

import (
	"bytes"
	"strings"
	"testing"

	"github.com/promptly-io/promptly/pkg/locale"
)

// readNumericFromString runs the numeric policy over scripted input.
func readNumericFromString(t *testing.T, input string, l *locale.Locale, allowNegative, allowFractional bool) (string, string) {
	t.Helper()
	output := &bytes.Buffer{}
	raw, err := ReadNumeric(NewReaderSource(strings.NewReader(input)), output, l, allowNegative, allowFractional)
	if err != nil {
		t.Fatal("numeric capture failed:", err)
	}
	return raw, output.String()
}

// TestReadNumeric tests numeric keystroke acceptance across inputs.
func TestReadNumeric(t *testing.T) {
	// Set up test cases. Scripted input embeds backspaces as \b and terminates
	// with a newline.
	testCases := []struct {
		input           string
		allowNegative   bool
		allowFractional bool
		expected        string
	}{
		{"-12.5\n", true, true, "-12.5"},
		{"-12.5\n", false, true, "12.5"},
		{"-12.5\n", true, false, "-125"},
		{"12a3b\n", true, true, "123"},
		{"1..5\n", true, true, "1.5"},
		{"1-2\n", true, true, "12"},
		{"--5\n", true, true, "-5"},
		{"\n", true, true, ""},
		{"12\b3\n", true, true, "13"},
		{"\b\b7\n", true, true, "7"},
	}

	// Perform tests.
	for _, testCase := range testCases {
		raw, _ := readNumericFromString(
			t, testCase.input, locale.Default(),
			testCase.allowNegative, testCase.allowFractional,
		)
		if raw != testCase.expected {
			t.Errorf(
				"captured raw string for %q does not match expected: %q != %q",
				testCase.input, raw, testCase.expected,
			)
		}
	}
}

// TestReadNumericSeparatorFlagCleared tests that backspacing over the decimal
// separator clears the separator flag so it can be entered again.
func TestReadNumericSeparatorFlagCleared(t *testing.T) {
	raw, _ := readNumericFromString(t, "1.5\b\b.\n", locale.Default(), true, true)
	if raw != "1." {
		t.Error("captured raw string does not match expected:", raw, "!= 1.")
	}
}

// TestReadNumericSignFlagCleared tests that backspacing over the sign clears
// the sign flag so it can be entered again.
func TestReadNumericSignFlagCleared(t *testing.T) {
	raw, _ := readNumericFromString(t, "-\b-5\n", locale.Default(), true, true)
	if raw != "-5" {
		t.Error("captured raw string does not match expected:", raw, "!= -5")
	}
}

// TestReadNumericEcho tests that only accepted keystrokes are echoed.
func TestReadNumericEcho(t *testing.T) {
	_, echoed := readNumericFromString(t, "1a2\n", locale.Default(), true, true)
	if echoed != "12\n" {
		t.Errorf("echoed output does not match expected: %q != %q", echoed, "12\n")
	}
}

// TestReadNumericLocaleGlyphs tests that the acceptance policy follows the
// locale's native glyphs.
func TestReadNumericLocaleGlyphs(t *testing.T) {
	// Grab the German locale, whose decimal separator is a comma.
	german, err := locale.Resolve("de-DE")
	if err != nil {
		t.Fatal("unable to resolve German locale:", err)
	}

	// Verify that a comma is accepted and a period ignored.
	raw, _ := readNumericFromString(t, "3.,25\n", german, true, true)
	if raw != "3,25" {
		t.Error("captured raw string does not match expected:", raw, "!= 3,25")
	}
}
