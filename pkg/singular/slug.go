package singular

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe key from a display name: lower-case, every
// run of characters outside [a-z0-9] collapsed to a single hyphen, outer
// hyphens stripped. Names that reduce to nothing get the literal "item".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlugRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "item"
	}
	return s
}
