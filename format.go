package euclid

import "strings"

// Format renders p as a string, mapping each pulse to `pulse` and each rest
// to `rest`, order preserved. Any two runes are accepted — including equal
// ones; visual ambiguity is the caller's concern, not an error. The result
// is len(p) runes long.
//
// Complexity: O(n) time, O(n) space.
func Format(p Pattern, pulse, rest rune) string {
	var b strings.Builder
	b.Grow(len(p))
	for _, hit := range p {
		if hit {
			b.WriteRune(pulse)
		} else {
			b.WriteRune(rest)
		}
	}

	return b.String()
}
