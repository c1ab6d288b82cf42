package scan

import "strings"

// Normalize collapses extracted fragments into the single lower-cased
// string the classifier matches against. Fragments are deduplicated by
// exact equality before lower-casing; member order is whatever map
// iteration yields, which the classifier's substring matching does not
// depend on.
func Normalize(fragments []string) string {
	unique := make(map[string]struct{}, len(fragments))
	for _, f := range fragments {
		unique[f] = struct{}{}
	}

	parts := make([]string, 0, len(unique))
	for f := range unique {
		parts = append(parts, f)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
