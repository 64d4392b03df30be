// Package strings normalises user supplied identifiers.
package strings

import (
	"strings"
)

var separators = strings.NewReplacer("_", "", "-", "", " ", "")

// NormalizeNames canonicalises a list of checker names read from the
// environment. Each name is trimmed, lowercased and stripped of '_', '-'
// and inner spaces, so "Handle_Lifetime" and "handle-lifetime" both become
// "handlelifetime". Empty names are dropped and only the first occurrence
// of a name is kept.
//
//	NormalizeNames([]string{" Leak", "", "LEAK", "handle_lifetime"})
//	// []string{"leak", "handlelifetime"}
func NormalizeNames(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	names := make([]string, 0, len(values))
	for _, v := range values {
		name := separators.Replace(strings.ToLower(strings.TrimSpace(v)))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
