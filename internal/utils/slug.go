package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a human-readable title. The
// result is lowercase, runs of whitespace and punctuation collapse into a
// single hyphen, anything else outside [a-z0-9-] is dropped, and the slug
// never starts or ends with a hyphen.
//
// Slugify is deterministic and idempotent: Slugify(Slugify(t)) == Slugify(t).
// It does not guarantee uniqueness; colliding slugs are rejected by the
// database unique constraint at creation time.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || unicode.IsPunct(r):
			pendingHyphen = true
		}
	}

	return b.String()
}
