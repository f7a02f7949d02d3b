package convert

import (
	"testing"
	"time"

	"github.com/promptly-io/promptly/pkg/locale"
)

// TestConvertString tests string conversion, including the empty case.
func TestConvertString(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		raw      string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "hello"},
		{"  spaced  ", "  spaced  "},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := Convert(testCase.raw, KindString, locale.Default())
		if err != nil {
			t.Errorf("string conversion of %q failed: %v", testCase.raw, err)
			continue
		}
		if value.(string) != testCase.expected {
			t.Errorf(
				"converted string does not match expected: %q != %q",
				value, testCase.expected,
			)
		}
	}
}

// TestConvertEmptyNonString tests that empty responses fail for shapes that
// cannot represent the absence of a value.
func TestConvertEmptyNonString(t *testing.T) {
	for _, kind := range []Kind{KindBoolean, KindInteger, KindFloat, KindDateTime} {
		if _, err := Convert("", kind, locale.Default()); err == nil {
			t.Errorf("expected empty conversion to fail for kind %v", kind)
		}
	}
}

// TestConvertBoolean tests boolean conversion across locales.
func TestConvertBoolean(t *testing.T) {
	// Grab locales.
	english := locale.Default()
	german, err := locale.Resolve("de-DE")
	if err != nil {
		t.Fatal("unable to resolve German locale:", err)
	}

	// Set up test cases.
	testCases := []struct {
		locale   *locale.Locale
		raw      string
		expected bool
		fail     bool
	}{
		{english, "yes", true, false},
		{english, "Y", true, false},
		{english, "no", false, false},
		{english, "FALSE", false, false},
		{english, "ja", false, true},
		{german, "ja", true, false},
		{german, "nein", false, false},
		{german, "maybe", false, true},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := Convert(testCase.raw, KindBoolean, testCase.locale)
		if testCase.fail {
			if err == nil {
				t.Errorf("expected boolean conversion of %q to fail", testCase.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("boolean conversion of %q failed: %v", testCase.raw, err)
			continue
		}
		if value.(bool) != testCase.expected {
			t.Errorf(
				"converted boolean for %q does not match expected: %t != %t",
				testCase.raw, value, testCase.expected,
			)
		}
	}
}

// TestConvertInteger tests integer conversion with locale digit glyphs and
// group separators.
func TestConvertInteger(t *testing.T) {
	// Grab locales.
	english := locale.Default()
	german, err := locale.Resolve("de-DE")
	if err != nil {
		t.Fatal("unable to resolve German locale:", err)
	}
	arabic, err := locale.Resolve("ar-EG")
	if err != nil {
		t.Fatal("unable to resolve Arabic locale:", err)
	}

	// Set up test cases.
	testCases := []struct {
		locale   *locale.Locale
		raw      string
		expected int64
		fail     bool
	}{
		{english, "42", 42, false},
		{english, "-17", -17, false},
		{english, "1,000", 1000, false},
		{english, "12.5", 0, true},
		{english, "abc", 0, true},
		{german, "1.000", 1000, false},
		{arabic, "٤٢", 42, false},
		{arabic, "42", 0, true},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := Convert(testCase.raw, KindInteger, testCase.locale)
		if testCase.fail {
			if err == nil {
				t.Errorf("expected integer conversion of %q to fail", testCase.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("integer conversion of %q failed: %v", testCase.raw, err)
			continue
		}
		if value.(int64) != testCase.expected {
			t.Errorf(
				"converted integer for %q does not match expected: %d != %d",
				testCase.raw, value, testCase.expected,
			)
		}
	}
}

// TestConvertFloat tests floating-point conversion with locale decimal
// separators.
func TestConvertFloat(t *testing.T) {
	// Grab locales.
	english := locale.Default()
	german, err := locale.Resolve("de-DE")
	if err != nil {
		t.Fatal("unable to resolve German locale:", err)
	}

	// Set up test cases.
	testCases := []struct {
		locale   *locale.Locale
		raw      string
		expected float64
		fail     bool
	}{
		{english, "-12.5", -12.5, false},
		{english, "3.25", 3.25, false},
		{english, "1.", 1.0, false},
		{german, "3,25", 3.25, false},
		{german, "-0,5", -0.5, false},
		{english, "3,25", 325, false},
		{english, "--1", 0, true},
		{english, "1-2", 0, true},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := Convert(testCase.raw, KindFloat, testCase.locale)
		if testCase.fail {
			if err == nil {
				t.Errorf("expected float conversion of %q to fail", testCase.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("float conversion of %q failed: %v", testCase.raw, err)
			continue
		}
		if value.(float64) != testCase.expected {
			t.Errorf(
				"converted float for %q does not match expected: %v != %v",
				testCase.raw, value, testCase.expected,
			)
		}
	}
}

// TestConvertDateTime tests date/time conversion against locale layouts.
func TestConvertDateTime(t *testing.T) {
	// Grab locales.
	english := locale.Default()
	german, err := locale.Resolve("de-DE")
	if err != nil {
		t.Fatal("unable to resolve German locale:", err)
	}

	// Set up test cases.
	testCases := []struct {
		locale   *locale.Locale
		raw      string
		expected time.Time
		fail     bool
	}{
		{english, "12/31/2024", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{english, "2024-12-31", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{german, "31.12.2024", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{english, "not a date", time.Time{}, true},
	}

	// Perform tests.
	for _, testCase := range testCases {
		value, err := Convert(testCase.raw, KindDateTime, testCase.locale)
		if testCase.fail {
			if err == nil {
				t.Errorf("expected date/time conversion of %q to fail", testCase.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("date/time conversion of %q failed: %v", testCase.raw, err)
			continue
		}
		if !value.(time.Time).Equal(testCase.expected) {
			t.Errorf(
				"converted date/time for %q does not match expected: %v != %v",
				testCase.raw, value, testCase.expected,
			)
		}
	}
}
