package euclid

// Rotate returns p shifted cyclically by `rotation` positions: positive
// values rotate left (earlier in time), negative values rotate right. The
// shift wraps modulo len(p), so rotation and rotation+len(p) agree and
// rotation 0 is the identity.
//
// Rotate is total: an empty pattern rotates to an empty pattern, and the
// result is always a fresh slice, never an alias of p.
//
// Complexity: O(n) time, O(n) space.
func Rotate(p Pattern, rotation int) Pattern {
	n := len(p)
	if n == 0 {
		return Pattern{}
	}

	// Normalize signed rotation into [0, n).
	shift := ((rotation % n) + n) % n

	out := make(Pattern, 0, n)
	out = append(out, p[shift:]...)
	out = append(out, p[:shift]...)

	return out
}
