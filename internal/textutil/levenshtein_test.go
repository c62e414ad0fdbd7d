package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"flaw", "lawn"},
		{"ls", "sl"},
	}
	for _, p := range pairs {
		assert.Equal(t, Levenshtein(p[0], p[1]), Levenshtein(p[1], p[0]), "levenshtein(%q,%q) should be symmetric", p[0], p[1])
	}
}

func TestLevenshteinIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "echo"} {
		assert.Equal(t, 0, Levenshtein(s, s))
	}
}

func TestLevenshteinUpperBound(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"ls", "cat"},
	}
	for _, p := range pairs {
		d := Levenshtein(p[0], p[1])
		max := len(p[0])
		if len(p[1]) > max {
			max = len(p[1])
		}
		assert.LessOrEqual(t, d, max)
	}
}

func TestLevenshteinKnownValues(t *testing.T) {
	assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
	assert.Equal(t, 1, Levenshtein("ech", "echo"))
	assert.Equal(t, 0, Levenshtein("echo", "echo"))
}
