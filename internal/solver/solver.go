// internal/solver/solver.go
//
// The codebreaker: plays the guessing side of Mastermind with Knuth's
// five-guess strategy.
// Responsibilities:
//   - Track the candidate set: every code still consistent with all the
//     feedback received so far.
//   - Drive the session state machine: init → guessing → solved/exhausted.
//   - Detect impossible feedback sequences (a lying or mistaken opponent).
//
// Guess selection lives in minimax.go.

package solver

import (
	"errors"
	"fmt"

	"github.com/mfilippo/mastermind/internal/game"
)

// State names the phase of one codebreaking session.
type State string

const (
	StateInit      State = "init"      // no feedback received yet
	StateGuessing  State = "guessing"  // mid-game
	StateSolved    State = "solved"    // last answer was all black
	StateExhausted State = "exhausted" // guess budget spent without solving
)

// Terminal reports whether the session will produce no further guesses.
func (s State) Terminal() bool { return s == StateSolved || s == StateExhausted }

var (
	// ErrConflictingFeedback reports an answer sequence no code could have
	// produced: the candidate set is empty, so the opponent mis-scored a
	// guess somewhere. The session cannot continue and stays in this error.
	ErrConflictingFeedback = errors.New("feedback conflicts with every remaining candidate")

	// ErrGameOver reports a call on a finished session.
	ErrGameOver = errors.New("game already finished")
)

// Breaker is one codebreaking session. It owns its candidate set and history
// exclusively and is not safe for concurrent use; concurrent games take one
// Breaker each.
type Breaker struct {
	rules      game.Rules
	space      []game.Code            // the full code space in index order
	candidates []game.Code            // still-possible secrets, index order
	member     map[game.Code]struct{} // membership view of candidates
	history    []game.Turn
	current    game.Code // the guess to emit next
	state      State
}

// New starts a session under the given rules. The candidate set covers the
// whole code space and the opening guess is precomputed, so the first
// NextGuess is free.
func New(rules game.Rules) (*Breaker, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	b := &Breaker{
		rules: rules,
		space: enumerate(rules),
		state: StateInit,
	}
	b.candidates = make([]game.Code, len(b.space))
	copy(b.candidates, b.space)
	b.member = make(map[game.Code]struct{}, len(b.space))
	for _, c := range b.space {
		b.member[c] = struct{}{}
	}
	b.current = Opening(rules)
	return b, nil
}

// Rules returns the rules the session was started with.
func (b *Breaker) Rules() game.Rules { return b.rules }

// State reports the current phase.
func (b *Breaker) State() State { return b.state }

// Remaining counts the candidates still consistent with every answer.
func (b *Breaker) Remaining() int { return len(b.candidates) }

// Candidates returns a copy of the remaining candidates in index order.
func (b *Breaker) Candidates() []game.Code {
	out := make([]game.Code, len(b.candidates))
	copy(out, b.candidates)
	return out
}

// History returns a copy of the (guess, feedback) turns played so far.
func (b *Breaker) History() []game.Turn {
	out := make([]game.Turn, len(b.history))
	copy(out, b.history)
	return out
}

// NextGuess returns the guess to play now: the opening guess before any
// feedback, afterwards the minimax choice cached by SubmitFeedback. Reading
// never advances the session, so repeated calls return the same code.
func (b *Breaker) NextGuess() (game.Code, error) {
	if b.state.Terminal() {
		return "", fmt.Errorf("%w: state is %s", ErrGameOver, b.state)
	}
	if len(b.candidates) == 0 {
		return "", ErrConflictingFeedback
	}
	return b.current, nil
}

// SubmitFeedback advances the session with the opponent's answer for the
// current guess and returns the new state.
//
// The transition, in order:
//  1. Record the turn and drop every candidate that would not have produced
//     exactly this answer. The real secret always reproduces the observed
//     answer, so the set only ever shrinks and never loses the secret.
//  2. An empty candidate set means the answer history is impossible:
//     ErrConflictingFeedback, and the session stays unusable.
//  3. An all-black answer ends the session solved.
//  4. A spent guess budget ends it exhausted.
//  5. Otherwise the next guess is selected by minimax over the full space
//     and cached for NextGuess.
func (b *Breaker) SubmitFeedback(fb game.Feedback) (State, error) {
	if b.state.Terminal() {
		return b.state, fmt.Errorf("%w: state is %s", ErrGameOver, b.state)
	}
	if len(b.candidates) == 0 {
		return b.state, ErrConflictingFeedback
	}

	b.history = append(b.history, game.Turn{Guess: b.current, Feedback: fb})

	kept := b.candidates[:0]
	for _, c := range b.candidates {
		if mustScore(b.current, c) == fb {
			kept = append(kept, c)
		} else {
			delete(b.member, c)
		}
	}
	b.candidates = kept

	if len(b.candidates) == 0 {
		return b.state, ErrConflictingFeedback
	}
	if fb.Black == b.rules.Positions {
		b.state = StateSolved
		return b.state, nil
	}
	if len(b.history) >= b.rules.MaxGuesses {
		b.state = StateExhausted
		return b.state, nil
	}

	b.current = b.selectGuess()
	b.state = StateGuessing
	return b.state, nil
}

// mustScore scores two codes from one space; lengths always agree there, so
// a scoring error is a programming bug.
func mustScore(guess, target game.Code) game.Feedback {
	fb, err := game.Score(guess, target)
	if err != nil {
		panic(err)
	}
	return fb
}
