// internal/game/score.go
//
// The scorer: computes the black/white peg answer for a guess against a
// target code using the classic two-pass algorithm. The counts array gives
// repeated colours multiset semantics, so no symbol is counted twice.

package game

import "fmt"

// Score compares guess and target and returns the peg feedback.
//
// Pass 1:
//   - Count positions where guess and target agree (black pegs).
//   - Tally the colours of the remaining target positions.
//
// Pass 2:
//   - Each remaining guess symbol with tally left scores a white peg and
//     consumes one tally; symbols beyond the tally score nothing.
//
// Score is pure and symmetric: Score(a, b) equals Score(b, a), and
// Score(x, x) is (len(x), 0). The codes must be the same length; symbol
// validity is a construction invariant of Code (see ParseCode).
func Score(guess, target Code) (Feedback, error) {
	if len(guess) != len(target) {
		return Feedback{}, fmt.Errorf("%w: guess has %d symbols, target has %d", ErrInvalidCode, len(guess), len(target))
	}

	var fb Feedback

	// Colour frequency for the non-black target positions (A..Z).
	var counts [26]int

	// First pass: count blacks, tally the unmatched target colours.
	for i := 0; i < len(guess); i++ {
		if guess[i] == target[i] {
			fb.Black++
		} else {
			counts[target[i]-'A']++
		}
	}

	// Second pass: whites from the unmatched guess colours.
	for i := 0; i < len(guess); i++ {
		if guess[i] == target[i] {
			continue
		}
		if j := guess[i] - 'A'; counts[j] > 0 {
			fb.White++
			counts[j]--
		}
	}
	return fb, nil
}
