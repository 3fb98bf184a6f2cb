// Package slug builds the URL-safe public identifiers restaurants are
// reached by. Slugs are generated once at signup and never change;
// printed QR codes depend on them.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// fold strips diacritics down to base Latin letters ("Açaí" to "Acai").
var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Apostrophes are elided rather than hyphenated: "Bob's" becomes
// "bobs", not "bob-s".
var apostrophes = strings.NewReplacer("'", "", "’", "")

// Make normalizes a display name into a slug candidate: lower-case,
// diacritics folded, apostrophes elided, runs of non-alphanumerics
// collapsed to single hyphens, leading/trailing hyphens trimmed.
func Make(name string) string {
	s := strings.ToLower(name)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = apostrophes.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Unique disambiguates a candidate against already-taken slugs by
// appending the smallest unused numeric suffix: name, name-1, name-2, …
// exists reports whether a slug is taken.
func Unique(name string, exists func(string) bool) string {
	base := Make(name)
	candidate := base
	for counter := 1; exists(candidate); counter++ {
		candidate = base + "-" + strconv.Itoa(counter)
	}
	return candidate
}
