// Package trigger decides whether a piece of message text should invoke the
// card reader, per the configured command words and optional prefixes.
package trigger

import (
	"sort"
	"strings"
)

// Match reports whether text is a trigger. With no prefixes configured the
// trimmed text must equal one of the command words. With prefixes, the
// longest matching prefix is stripped first; text matching no prefix never
// triggers.
func Match(text string, prefixes, commands []string) bool {
	text = strings.TrimSpace(text)

	if len(prefixes) > 0 {
		sorted := make([]string, len(prefixes))
		copy(sorted, prefixes)
		sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

		stripped := ""
		found := false
		for _, p := range sorted {
			if strings.HasPrefix(text, p) {
				stripped = strings.TrimSpace(text[len(p):])
				found = true
				break
			}
		}
		if !found {
			return false
		}
		text = stripped
	}

	for _, c := range commands {
		if text == c {
			return true
		}
	}
	return false
}
