package display

import (
	"errors"
	"regexp"
	"testing"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-03-01 18:00:00", "03-01 at 14:00"},
		{"2024-03-02 00:00:00", "03-01 at 20:00"},
		{"2024-03-02 03:00:00", "03-01 at 23:00"},
		{"2024-01-01 02:30:00", "12-31 at 22:30"},
		{"2024-07-04 12:00:00", "07-04 at 08:00"}, // no daylight-saving adjustment
		{"  2024-03-01 18:00:00\n", "03-01 at 14:00"},
	}

	pattern := regexp.MustCompile(`^\d{2}-\d{2} at \d{2}:\d{2}$`)

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Localize(tt.input)
			if err != nil {
				t.Fatalf("Localize(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Localize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if !pattern.MatchString(got) {
				t.Errorf("Localize(%q) = %q does not match MM-DD at HH:MM", tt.input, got)
			}
		})
	}
}

func TestLocalizeMalformed(t *testing.T) {
	inputs := []string{
		"",
		"2024-03-01",
		"2024-03-01T18:00:00Z",
		"03/01/2024 18:00:00",
		"2024-13-01 18:00:00",
		"2024-03-01 25:00:00",
		"not a time",
		"2024-03-01 18:00:00.999",
		"2024-03-01 18:00:00,5",
		"2024-03-01 18:00:00 UTC",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, err := Localize(input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %T (%v)", err, err)
			}
			if parseErr.Input != input {
				t.Errorf("Expected input %q in error, got %q", input, parseErr.Input)
			}
			if got != "" {
				t.Errorf("Expected empty output on error, got %q", got)
			}
		})
	}
}
