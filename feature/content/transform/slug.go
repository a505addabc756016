package transform

import (
	"fmt"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, collapses every run of characters outside [a-z0-9] into
// a single hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// deriveSlug prefers the explicit slug, then the display name, then the entry id.
// The positional fallback keeps the slug non-empty when all three are unusable.
func deriveSlug(explicit, name, id, category string, index int) string {
	for _, candidate := range []string{explicit, name, id} {
		if slug := Slugify(candidate); slug != "" {
			return slug
		}
	}
	return fmt.Sprintf("%s-%d", category, index+1)
}
