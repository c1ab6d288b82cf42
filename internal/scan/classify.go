package scan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fikrirozi147/halal-checker-backend/internal/catalogue"
)

// Classify scans the normalized text against the dictionary and
// resolves the verdict. Haram strictly outranks Mushbooh: any haram
// match suppresses mushbooh reporting entirely.
func Classify(text string, cat *catalogue.Catalogue) Result {
	haram := matchEntries(text, cat.Haram)
	mushbooh := matchEntries(text, cat.Mushbooh)

	switch {
	case len(haram) > 0:
		return Result{Status: StatusHaram, Reason: strings.Join(haram, "\n\n"), Color: colorHaram}
	case len(mushbooh) > 0:
		return Result{Status: StatusMushbooh, Reason: strings.Join(mushbooh, "\n\n"), Color: colorMushbooh}
	default:
		return Result{Status: StatusHalal, Reason: halalReason, Color: colorHalal}
	}
}

// matchEntries walks the entries in catalogue order. The first synonym
// found in the text wins for its entry; remaining synonyms are skipped,
// so an entry contributes at most one line. Duplicate catalogue entries
// producing the same formatted line are collapsed.
func matchEntries(text string, entries []catalogue.Entry) []string {
	var lines []string
	seen := make(map[string]struct{})

	for _, entry := range entries {
		display := capitalize(entry.Names[0])
		for _, name := range entry.Names {
			if !strings.Contains(text, strings.ToLower(name)) {
				continue
			}
			line := fmt.Sprintf("• %s (found: '%s')\n   Why: %s", display, name, entry.Reason)
			if _, dup := seen[line]; !dup {
				seen[line] = struct{}{}
				lines = append(lines, line)
			}
			break
		}
	}
	return lines
}

// capitalize upper-cases the first rune and lower-cases the rest,
// turning whatever casing the catalogue carries into a display name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
