package euclid

import "errors"

// Sentinel errors for pattern generation. Callers branch with errors.Is;
// rotation and formatting are total over their valid input domain and have
// no error path of their own.
var (
	// ErrZeroSteps indicates a requested pattern of zero (or negative) length.
	ErrZeroSteps = errors.New("euclid: steps must be at least 1")
	// ErrPulsesExceedSteps indicates pulses outside the closed interval [0, steps].
	ErrPulsesExceedSteps = errors.New("euclid: pulses must be between 0 and steps")
)
