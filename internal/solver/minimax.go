// internal/solver/minimax.go
//
// Guess selection.
// The opening guess is a fixed pattern (Knuth's AABB for the classic board).
// Later guesses minimise the worst case: every code in the FULL space is
// ranked by the largest feedback bucket it could leave behind, and the
// smallest wins. Restricting the scan to the candidates themselves is a
// weaker strategy that loses the five-guess bound on the classic board, so
// the full-space scan is deliberate.

package solver

import "github.com/mfilippo/mastermind/internal/game"

// enumerate builds the full code space in lexicographic index order.
func enumerate(r game.Rules) []game.Code {
	space := make([]game.Code, game.SpaceSize(r))
	for i := range space {
		space[i] = game.CodeAt(r, i)
	}
	return space
}

// Opening returns the fixed first guess: symbols paired two positions at a
// time, wrapping around the alphabet, which is AABB on the classic board.
// Precomputing it skips a minimax scan of the full space against itself on
// move one.
func Opening(r game.Rules) game.Code {
	b := make([]byte, r.Positions)
	for i := range b {
		b[i] = byte('A') + byte((i/2)%r.Colors)
	}
	return game.Code(b)
}

// selectGuess picks the next guess by minimax over the entire code space.
//
// For each potential guess the candidates are bucketed by the answer the
// guess would receive if each candidate were the secret; the guess's cost is
// the largest bucket, the candidate count that could survive in the worst
// case. The guess with the smallest cost wins. Ties break toward guesses
// that are themselves candidates (those can end the game outright), then
// toward the lowest space index; scanning in index order makes the whole
// choice deterministic.
func (b *Breaker) selectGuess() game.Code {
	// With two candidates or fewer, guessing the first candidate is already
	// optimal: its worst bucket is one, no other guess beats one, and the
	// tie-breaks favour low-index candidates.
	if len(b.candidates) <= 2 {
		return b.candidates[0]
	}

	p := b.rules.Positions

	// Answer buckets laid out flat as black*(positions+1)+white, reset and
	// reused for every scanned guess instead of allocating a map per code.
	buckets := make([]int, (p+1)*(p+1))

	var (
		best        game.Code
		bestWorst   = len(b.candidates) + 1
		bestInCands bool
	)
	for _, g := range b.space {
		for i := range buckets {
			buckets[i] = 0
		}
		worst := 0
		for _, c := range b.candidates {
			fb := mustScore(g, c)
			i := fb.Black*(p+1) + fb.White
			buckets[i]++
			if buckets[i] > worst {
				worst = buckets[i]
			}
		}
		if worst > bestWorst {
			continue
		}
		_, inCands := b.member[g]
		if worst < bestWorst || (inCands && !bestInCands) {
			best, bestWorst, bestInCands = g, worst, inCands
		}
	}
	return best
}
