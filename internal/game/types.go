// internal/game/types.go
//
// Core value types for the Mastermind engine.
// Defines:
//   - Code: an ordered sequence of symbols, one per board position.
//   - Feedback: the black/white peg answer for one guess.
//   - Rules: board dimensions and the guess budget for one game.
//   - Turn: one (guess, feedback) entry of a game's history.

package game

import (
	"errors"
	"fmt"
)

// alphabet is the symbol pool; a game uses its first Rules.Colors letters.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Bounds enforced by Rules.Validate. Ten positions keeps peg counts readable
// on the board; the alphabet caps the colours at 26.
const (
	MaxPositions = 10
	MaxColors    = len(alphabet)
)

// ErrInvalidCode reports a code with the wrong length or a symbol outside the
// alphabet. Offending input is rejected outright, never truncated or clamped.
var ErrInvalidCode = errors.New("invalid code")

// Code is an ordered sequence of symbols, one per board position. Codes are
// immutable, compare with ==, and order lexicographically, which gives the
// solver a fixed total order for deterministic tie-breaking. Build codes with
// ParseCode, RandomCode or CodeAt so the alphabet invariant holds.
type Code string

// Feedback is the scored answer for one guess: Black counts symbols matching
// both colour and position, White counts the remaining colour-only matches
// under multiset semantics. Black+White never exceeds the position count.
type Feedback struct {
	Black int
	White int
}

// String renders the peg count, e.g. "2B 1W".
func (f Feedback) String() string { return fmt.Sprintf("%dB %dW", f.Black, f.White) }

// Turn is one entry of a game's guess history.
type Turn struct {
	Guess    Code
	Feedback Feedback
}

// Rules fixes the board dimensions and guess budget for one game.
type Rules struct {
	Positions  int // symbols per code (classic: 4)
	Colors     int // alphabet size (classic: 6)
	MaxGuesses int // guesses allowed before the game is lost
}

// Classic returns the canonical 4-position, 6-colour game with a ten-guess
// budget.
func Classic() Rules { return Rules{Positions: 4, Colors: 6, MaxGuesses: 10} }

// Validate checks that the rules are within supported bounds.
func (r Rules) Validate() error {
	if r.Positions < 1 || r.Positions > MaxPositions {
		return fmt.Errorf("positions must be 1..%d, got %d", MaxPositions, r.Positions)
	}
	if r.Colors < 1 || r.Colors > MaxColors {
		return fmt.Errorf("colors must be 1..%d, got %d", MaxColors, r.Colors)
	}
	if r.MaxGuesses < 1 {
		return fmt.Errorf("max guesses must be positive, got %d", r.MaxGuesses)
	}
	return nil
}

// Alphabet returns the usable symbols: the first Colors letters of A..Z.
func (r Rules) Alphabet() string { return alphabet[:r.Colors] }
