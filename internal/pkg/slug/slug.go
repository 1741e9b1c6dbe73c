// Package slug derives URL slugs from post titles.
package slug

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Make lowercases the title, collapses everything that is not a letter or
// digit into single hyphens and trims the ends.
func Make(title string) string {
	var b strings.Builder
	prevHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevHyphen = false
		case !prevHyphen:
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Disambiguate appends a short time-derived suffix for slug collisions.
func Disambiguate(s string) string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	return s + "-" + ms[len(ms)-4:]
}
