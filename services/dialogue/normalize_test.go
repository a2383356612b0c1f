package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Please, BOOK a table for 4 at 7:30pm!!", "book a table for 4 at 7:30pm"},
		{"umm what do you have on 25-12-2025?", "what do you have on 25-12-2025"},
		{"  kindly   show the   menu  ", "show the menu"},
		{"yes", "yes"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Normalize(tc.input), "input %q", tc.input)
	}
}

func TestNormalizeKeepsTemporalPunctuation(t *testing.T) {
	got := Normalize("7:30pm on 25/12/2025 or 25-12-25")
	assert.Equal(t, "7:30pm on 25/12/2025 or 25-12-25", got)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "chicken biryani", normalizeName("Chicken  Biryani!"))
	assert.Equal(t, "zinger burger", normalizeName(" Zinger-Burger "))
	assert.Equal(t, "", normalizeName("!!!"))
}
