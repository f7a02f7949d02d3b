package keystroke

import (
	"bytes"
	"strings"
	"testing"
)

// TestReadLine tests plain line capture with tail editing.
func TestReadLine(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		input    string
		expected string
	}{
		{"\n", ""},
		{"hello\n", "hello"},
		{"hellp\bo\n", "hello"},
		{"\b\bok\n", "ok"},
		{"spaced out\n", "spaced out"},
	}

	// Perform tests.
	for _, testCase := range testCases {
		response, err := ReadLine(NewReaderSource(strings.NewReader(testCase.input)), nil)
		if err != nil {
			t.Errorf("line capture of %q failed: %v", testCase.input, err)
			continue
		}
		if response != testCase.expected {
			t.Errorf(
				"captured line for %q does not match expected: %q != %q",
				testCase.input, response, testCase.expected,
			)
		}
	}
}

// TestReadLineEcho tests that accepted characters are echoed as typed.
func TestReadLineEcho(t *testing.T) {
	output := &bytes.Buffer{}
	if _, err := ReadLine(NewReaderSource(strings.NewReader("hi\n")), output); err != nil {
		t.Fatal("line capture failed:", err)
	}
	if echoed := output.String(); echoed != "hi\n" {
		t.Errorf("echoed output does not match expected: %q != %q", echoed, "hi\n")
	}
}
