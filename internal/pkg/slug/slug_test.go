//go:build unit

package slug_test

import (
	"testing"

	"entry-registry/internal/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestToTitle(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "words joined by and", in: "make-and-build", want: "Make and Build"},
		{name: "empty", in: "", want: ""},
		{name: "single word", in: "table", want: "Table"},
		{name: "and alone stays lowercase", in: "and", want: "and"},
		{name: "leading and", in: "and-then", want: "and Then"},
		{name: "rest of word untouched", in: "hELLO-wORLD", want: "HELLO WORLD"},
		{name: "capitalised And is a normal word", in: "rock-And-roll", want: "Rock And Roll"},
		{name: "empty segments", in: "a--b", want: "A  B"},
		{name: "digits", in: "route-66", want: "Route 66"},
		{name: "leading digit leaves the rest alone", in: "1st-place", want: "1st Place"},
		{name: "slash is not a word break", in: "foo/bar", want: "Foo/bar"},
		{name: "space is not a word break", in: "a b", want: "A b"},
		{name: "apostrophe", in: "rock-'n'-roll", want: "Rock 'n' Roll"},
		{name: "multibyte first rune", in: "élan-vital", want: "Élan Vital"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.ToTitle(tc.in))
		})
	}
}
