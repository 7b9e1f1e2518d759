package similarity

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		min  float64
		max  float64
	}{
		{name: "Identical", a: "123 MAIN ST  SPRINGFIELD, IL 62701", b: "123 MAIN ST  SPRINGFIELD, IL 62701", min: 0.999, max: 1.0},
		{name: "Case and punctuation ignored", a: "123 Main St.", b: "123 MAIN ST", min: 0.999, max: 1.0},
		{name: "Near match", a: "123 MAIN ST", b: "123 MAINE ST", min: 0.5, max: 0.999},
		{name: "Disjoint", a: "AAAAAA", b: "ZZZZZZ", min: 0.0, max: 0.0},
		{name: "Empty side", a: "", b: "123 MAIN ST", min: 0.0, max: 0.0},
		{name: "Both empty", a: "", b: "", min: 0.0, max: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.a, tt.b)
			if got < tt.min || got > tt.max {
				t.Errorf("Score(%q, %q) = %f, want in [%f, %f]", tt.a, tt.b, got, tt.min, tt.max)
			}
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	a, b := "1600 PENNSYLVANIA AVE NW", "1600 PENN AVE NW"
	if d := math.Abs(Score(a, b) - Score(b, a)); d > 1e-12 {
		t.Errorf("Score not symmetric, delta %g", d)
	}
}

func TestTokenOverlap(t *testing.T) {
	got, err := TokenOverlap("123 MAIN ST", "123 MAIN ST")
	if err != nil {
		t.Fatalf("TokenOverlap: %v", err)
	}
	if got != 1.0 {
		t.Errorf("identical overlap = %f, want 1.0", got)
	}

	got, err = TokenOverlap("123 MAIN ST", "456 OAK AVE")
	if err != nil {
		t.Fatalf("TokenOverlap: %v", err)
	}
	if got != 0.0 {
		t.Errorf("disjoint overlap = %f, want 0.0", got)
	}

	got, err = TokenOverlap("", "123 MAIN ST")
	if err != nil {
		t.Fatalf("TokenOverlap: %v", err)
	}
	if got != 0.0 {
		t.Errorf("empty overlap = %f, want 0.0", got)
	}
}
