package schedule

import "strings"

// NormalizeClassCode produces the canonical form of a class code used for
// catalog lookups: spaces and dashes stripped, upper-cased. "cs - 201"
// normalizes to "CS201".
func NormalizeClassCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		switch r {
		case ' ', '\t', '-':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
