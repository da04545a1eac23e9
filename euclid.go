package euclid

// Rhythm generates the Euclidean rhythm E(pulses, steps), rotated left by
// `rotation` positions (circular, wraps modulo steps; negative rotates right).
//
// Returns ErrZeroSteps if steps < 1 and ErrPulsesExceedSteps if pulses lies
// outside [0, steps]. For valid input the result has length steps, exactly
// `pulses` true values, and is the canonical Bjorklund distribution for the
// pair — unique up to rotation.
//
// Contract note: invalid arguments yield a sentinel error rather than a
// panic, so callers branch with errors.Is; generation itself never fails.
//
// Example:
//
//	p, err := Rhythm(8, 3, 0) // Pattern{T,F,F,T,F,F,T,F} → "x..x..x."
//
// Complexity: O(steps · rounds) time, O(steps) memory.
func Rhythm(steps, pulses, rotation int) (Pattern, error) {
	if steps < 1 {
		return nil, ErrZeroSteps
	}
	if pulses < 0 || pulses > steps {
		return nil, ErrPulsesExceedSteps
	}

	// Degenerate densities: nothing to distribute.
	if pulses == 0 {
		return make(Pattern, steps), nil
	}
	if pulses == steps {
		p := make(Pattern, steps)
		for i := range p {
			p[i] = true
		}

		return p, nil
	}

	p := bjorklund(steps, pulses)
	if rotation%steps != 0 {
		p = Rotate(p, rotation)
	}

	return p, nil
}
