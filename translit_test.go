package slugy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/norbajunior/slugy"
)

func TestSlugifyWithGermanTable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sharp s and umlaut",
			input:    "Straße, München",
			expected: "strasse-muenchen",
		},
		{
			name:     "uppercase umlauts",
			input:    "Über Größe straße",
			expected: "ueber-groesse-strasse",
		},
		{
			name:     "no table characters",
			input:    "Plain Title",
			expected: "plain-title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slugy.Slugify(tt.input, slugy.WithTable(slugy.German))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSlugifyWithoutTable(t *testing.T) {
	// Without a table the sharp s has no canonical decomposition and is
	// dropped, while umlauts reduce to their base letter.
	assert.Equal(t, "strae-munchen", slugy.Slugify("Straße, München"))
}

func TestSlugifyCustomTable(t *testing.T) {
	table := slugy.Table{"&": " and ", "@": " at "}

	assert.Equal(t, "fish-and-chips", slugy.Slugify("Fish & Chips", slugy.WithTable(table)))
	assert.Equal(t, "me-at-home", slugy.Slugify("me@home", slugy.WithTable(table)))
}

func TestTableDoesNotCascade(t *testing.T) {
	// Replacements scan the input once: produced text is never rescanned.
	table := slugy.Table{"a": "b", "b": "c"}

	assert.Equal(t, "bc", slugy.Slugify("ab", slugy.WithTable(table)))
}

func TestSetDefaultTable(t *testing.T) {
	slugy.SetDefaultTable(slugy.German)
	t.Cleanup(func() { slugy.SetDefaultTable(nil) })

	assert.Equal(t, "strasse", slugy.Slugify("Straße"))

	// Per-call table overrides the process-wide default.
	override := slugy.Table{"ß": "sz"}
	assert.Equal(t, "strasze", slugy.Slugify("Straße", slugy.WithTable(override)))
}
