// Package euclid defines the Pattern type and rendering defaults shared by
// the generation, rotation and formatting operations.
package euclid

// Default symbols used by Pattern.String. Format accepts any pair of runes;
// these are only the conventional drum-notation choice.
const (
	// DefaultPulseSymbol marks a pulse ("hit") position.
	DefaultPulseSymbol = 'x'
	// DefaultRestSymbol marks a rest ("silence") position.
	DefaultRestSymbol = '.'
)

// Pattern is an ordered binary rhythm: true is a pulse, false is a rest.
// A Pattern returned by Rhythm has length == steps and exactly pulses true
// values, is freshly allocated per call, and is owned outright by the caller.
type Pattern []bool

// Steps returns the total number of positions in the pattern.
// Complexity: O(1).
func (p Pattern) Steps() int {
	return len(p)
}

// Pulses returns the number of pulse (true) positions.
// Complexity: O(n) time, O(1) space.
func (p Pattern) Pulses() int {
	n := 0
	for _, hit := range p {
		if hit {
			n++
		}
	}

	return n
}

// Onsets returns the indices of all pulse positions in ascending order.
// An all-rest pattern yields an empty, non-nil slice.
// Complexity: O(n) time, O(pulses) space.
func (p Pattern) Onsets() []int {
	onsets := make([]int, 0, len(p))
	for i, hit := range p {
		if hit {
			onsets = append(onsets, i)
		}
	}

	return onsets
}

// String renders the pattern with the default 'x' / '.' symbols.
// Complexity: O(n).
func (p Pattern) String() string {
	return Format(p, DefaultPulseSymbol, DefaultRestSymbol)
}
