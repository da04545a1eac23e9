// Package euclid generates Euclidean rhythm patterns — binary sequences that
// distribute a number of pulses as evenly as possible across a number of
// steps — using Bjorklund's algorithm, with cyclic rotation and string
// rendering on top.
//
// 🚀 What is a Euclidean rhythm?
//
//	Spread k pulses over n steps so the gaps between pulses are as equal as
//	integer arithmetic allows. The resulting patterns show up everywhere:
//	  • Cuban tresillo        E(3,8)  → x..x..x.
//	  • West African bell     E(5,8)  → x.xx.xx.
//	  • Persian rhythm        E(5,12) → x..x.x..x.x.
//	  • Brazilian bossa nova  E(7,16) → x..x.x.x..x.x.x.
//
//	Bjorklund published the construction in 2003 for timing neutron beams at
//	the SNS accelerator; Toussaint showed in 2005 that the same procedure
//	generates traditional rhythms from music worldwide.
//
// ✨ Key features:
//   - canonical (rotation-0) Bjorklund patterns, deterministic and allocation-tight
//   - cyclic rotation, positive (left) and negative (right), wrapping modulo n
//   - caller-chosen pulse/rest symbols for rendering, plus sensible defaults
//   - a table of well-known traditional presets (Tresillo, BossaNova, …)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/euclid"
//
//	p, err := euclid.Rhythm(8, 3, 0) // Pattern{T,F,F,T,F,F,T,F}
//	if err != nil {
//	  // ErrZeroSteps or ErrPulsesExceedSteps
//	}
//	fmt.Println(p)                              // x..x..x.
//	fmt.Println(euclid.Format(p, '1', '0'))     // 10010010
//	shifted := euclid.Rotate(p, 2)              // .x..x.x.
//
// Everything is a pure function over small slices: no goroutines, no locks,
// no global state. Each call allocates its own Pattern; results are safe to
// share between callers.
//
// Performance:
//
//   - Time:   O(n·rounds) with rounds bounded by the Euclidean-algorithm depth
//   - Memory: O(n), two flat arenas reused across pairing rounds
//
// See example_test.go for runnable demos of the common patterns, rotation and
// alternative renderings.
//
// References:
//
//   - Toussaint, G. (2005). "The Euclidean Algorithm Generates Traditional Musical Rhythms"
//   - Bjorklund, E. (2003). "The Theory of Rep-Rate Pattern Generation in the SNS Timing System"
package euclid
