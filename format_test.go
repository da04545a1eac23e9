package euclid_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/euclid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFormat_Symbols verifies symbol substitution with several caller-chosen
// pairs, including the binary and block renderings.
func TestFormat_Symbols(t *testing.T) {
	p, err := euclid.Rhythm(8, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, "x..x..x.", euclid.Format(p, 'x', '.'))
	assert.Equal(t, "10010010", euclid.Format(p, '1', '0'))
	assert.Equal(t, "█░░█░░█░", euclid.Format(p, '█', '░'))
}

// TestFormat_EqualSymbols confirms equal pulse and rest runes are accepted:
// visual ambiguity is the caller's concern, not an error.
func TestFormat_EqualSymbols(t *testing.T) {
	p, err := euclid.Rhythm(4, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "----", euclid.Format(p, '-', '-'))
}

// TestFormat_RuneLength verifies the rendering is len(p) runes even for
// multi-byte symbols.
func TestFormat_RuneLength(t *testing.T) {
	p, err := euclid.Rhythm(12, 5, 0)
	require.NoError(t, err)
	s := euclid.Format(p, '●', '○')
	assert.Equal(t, 12, utf8.RuneCountInString(s))
}

// TestFormat_RoundTrip checks that formatting E(pulses, steps) yields a
// string of length steps containing exactly pulses pulse symbols, across a
// sweep of shapes and rotations.
func TestFormat_RoundTrip(t *testing.T) {
	for steps := 1; steps <= 16; steps++ {
		for pulses := 0; pulses <= steps; pulses++ {
			for _, rotation := range []int{0, 1, steps - 1, steps + 2} {
				p, err := euclid.Rhythm(steps, pulses, rotation)
				require.NoError(t, err)
				s := euclid.Format(p, 'x', '.')
				assert.Len(t, s, steps, "E(%d,%d) rot %d formatted length", pulses, steps, rotation)
				assert.Equal(t, pulses, strings.Count(s, "x"), "E(%d,%d) rot %d pulse symbols", pulses, steps, rotation)
			}
		}
	}
}

// TestFormat_Empty renders the empty pattern as the empty string.
func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", euclid.Format(euclid.Pattern{}, 'x', '.'))
}
