package menu

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Voice transcripts rarely carry tildes ("limena" for "Limeña"), so every
// comparison runs over lower-cased text with combining marks stripped.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Matches reports whether either normalized string contains the other.
// The containment test is bidirectional so a short fragment finds a long
// dish name and a verbose transcript still finds a short one.
// An empty fragment matches everything; callers guard against that upstream.
func Matches(candidate, fragment string) bool {
	c := Normalize(candidate)
	f := Normalize(fragment)
	return strings.Contains(c, f) || strings.Contains(f, c)
}
