package standardizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Uppercases", input: "main street", expected: "MAIN STREET"},
		{name: "Strips periods", input: "Ste.", expected: "STE"},
		{name: "Collapses whitespace", input: "  a   b ", expected: "A B"},
		{name: "Strips parentheses", input: "Main St (rear)", expected: "MAIN ST REAR"},
		{name: "Folds accents", input: "Cañon City", expected: "CANON CITY"},
		{name: "Trims punctuation", input: "Washington,", expected: "WASHINGTON"},
		{name: "Empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}
