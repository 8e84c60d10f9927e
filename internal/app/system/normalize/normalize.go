// Package normalize is the single normalization boundary for submitted form
// values. Handlers call these helpers immediately after validation, before
// the dedup check, so stored documents and comparisons always see the same
// shape of a value.
package normalize

import "strings"

// Email trims surrounding whitespace and lower-cases an email address.
// Stored and compared emails always pass through here, which is what makes
// the primary-email uniqueness case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Field trims surrounding whitespace and preserves case. Used for free-text
// fields such as name, district, and designation.
func Field(s string) string {
	return strings.TrimSpace(s)
}

// Choice trims and upper-cases an enumerated answer so the stored value is
// canonical ("yes" and "Yes" both persist as "YES").
func Choice(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
