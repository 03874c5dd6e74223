package slug

import (
	"regexp"
	"strings"
)

// MaxLength is the default slug column length across content tables.
const MaxLength = 200

var (
	reInvalid = regexp.MustCompile(`[^a-z0-9\s-]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
	reHyphens = regexp.MustCompile(`-+`)
	reValid   = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Make derives a URL-safe slug from free text: lowercase, strip everything
// outside [a-z0-9\s-], collapse whitespace runs to a single hyphen, collapse
// hyphen runs, trim, and clamp to maxLen (MaxLength when maxLen <= 0).
// Deterministic and idempotent; returns "" for input with no usable
// characters.
func Make(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = MaxLength
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = reInvalid.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, "-")
	s = reHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	return s
}

// IsValid reports whether s is a well-formed slug (non-empty, matches
// ^[a-z0-9-]+$, within maxLen).
func IsValid(s string, maxLen int) bool {
	if maxLen <= 0 {
		maxLen = MaxLength
	}
	return s != "" && len(s) <= maxLen && reValid.MatchString(s)
}
