package domain

import "strings"

// NormalizeTag canonicalizes a tag name for comparisons: surrounding
// whitespace removed, case folded.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TagSet builds a lookup set of normalized tag names. Empty entries are
// dropped.
func TagSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := NormalizeTag(name)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
