package slug

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const keepLower = "and"

// ToTitle turns "make-and-build" into "Make and Build". Each dash separated
// segment gets its first character upper-cased and keeps the rest verbatim;
// "and" stays lowercase.
func ToTitle(s string) string {
	if s == "" {
		return ""
	}

	upper := cases.Upper(language.Und)
	words := strings.Split(s, "-")
	for i, w := range words {
		if w == "" || w == keepLower {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}
