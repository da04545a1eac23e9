package euclid

// bjorklund — canonical Euclidean pattern construction
//
// Description:
//
//	Bjorklund's algorithm distributes `pulses` hits across `steps` slots as
//	evenly as possible by repeatedly pairing groups of slots, the same way
//	Euclid's gcd algorithm repeatedly pairs remainders.
//
// Algorithm Outline:
//  1. Seed `pulses` one-cell [true] groups followed by `steps-pulses`
//     one-cell [false] groups. The boundary between the two runs is `split`.
//  2. Let left = groups before split, right = groups after. While more than
//     one right group remains:
//     a. pairs = min(|left|, |right|).
//     b. Merge left[i] ++ right[i] for i = 0..pairs-1, consuming both sides
//     left-to-right (this order is what makes the result canonical).
//     c. Unpaired groups from the longer side keep their relative order
//     after the merged groups.
//     d. Merged groups become the new left; split = pairs.
//  3. Concatenate all groups in their final order; that is the pattern.
//
// Storage:
//
//	Groups live in a flat bool arena addressed by (start, n) spans. Every
//	round rewrites all groups into a spare arena and swaps the two, so the
//	arena holds exactly `steps` cells in group order at all times — the final
//	arena IS the flattened pattern, no separate flatten pass needed.
//
// Complexity:
//
//	Time   = O(steps · rounds), rounds bounded by the gcd recursion depth
//	Memory = O(steps), two arenas plus two span lists, all sized up front

// span addresses one group's contents inside an arena: arena[start : start+n].
type span struct {
	start, n int
}

// appendGroup copies one group's cells out of arena onto dst.
// Complexity: O(s.n).
func appendGroup(dst, arena Pattern, s span) Pattern {
	return append(dst, arena[s.start:s.start+s.n]...)
}

// bjorklund builds the canonical rotation-0 pattern. The caller guarantees
// 0 < pulses < steps; the trivial all-true/all-false cases never reach here.
func bjorklund(steps, pulses int) Pattern {
	// Single pulse: the pairing loop converges to the same answer but needs
	// steps-1 rounds to get there; write it directly.
	if pulses == 1 {
		p := make(Pattern, steps)
		p[0] = true

		return p
	}

	// Arenas and span lists, double-buffered across rounds.
	cells := make(Pattern, 0, steps)
	spare := make(Pattern, 0, steps)
	spans := make([]span, 0, steps)
	nextSpans := make([]span, 0, steps)

	// Seed one-cell groups: pulses trues, then steps-pulses falses.
	for i := 0; i < steps; i++ {
		cells = append(cells, i < pulses)
		spans = append(spans, span{start: i, n: 1})
	}

	split := pulses
	for {
		right := len(spans) - split
		if right <= 1 {
			break
		}
		pairs := split
		if right < pairs {
			pairs = right
		}

		next := spare[:0]
		nextSpans = nextSpans[:0]

		// Merged groups: left i followed by right i, both consumed left-to-right.
		for i := 0; i < pairs; i++ {
			at := len(next)
			next = appendGroup(next, cells, spans[i])
			next = appendGroup(next, cells, spans[split+i])
			nextSpans = append(nextSpans, span{start: at, n: len(next) - at})
		}
		// Unpaired left groups survive when left outnumbers right.
		for i := pairs; i < split; i++ {
			at := len(next)
			next = appendGroup(next, cells, spans[i])
			nextSpans = append(nextSpans, span{start: at, n: spans[i].n})
		}
		// Unpaired right groups survive when right outnumbers left.
		for i := split + pairs; i < len(spans); i++ {
			at := len(next)
			next = appendGroup(next, cells, spans[i])
			nextSpans = append(nextSpans, span{start: at, n: spans[i].n})
		}

		cells, spare = next, cells
		spans, nextSpans = nextSpans, spans
		split = pairs
	}

	// The arena already holds every group's cells in final order.
	return cells
}
