// internal/solver/solver_test.go
//
// Solver behaviour: the state machine, the candidate-set invariants, and the
// headline guarantee that the classic 4x6 board always falls within five
// guesses.

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfilippo/mastermind/internal/game"
)

// playToEnd drives one full session against a known secret, checking per
// turn that the candidate set never grows and always contains the secret.
// Returns the number of guesses used.
func playToEnd(t *testing.T, rules game.Rules, secret game.Code) int {
	t.Helper()

	b, err := New(rules)
	require.NoError(t, err)

	prev := b.Remaining()
	for turn := 1; ; turn++ {
		guess, err := b.NextGuess()
		require.NoError(t, err, "secret %s turn %d", secret, turn)

		state, err := b.SubmitFeedback(mustScore(guess, secret))
		require.NoError(t, err, "secret %s turn %d", secret, turn)

		require.LessOrEqual(t, b.Remaining(), prev, "candidate set grew on secret %s turn %d", secret, turn)
		require.Contains(t, b.Candidates(), secret, "secret %s pruned on turn %d", secret, turn)
		prev = b.Remaining()

		switch state {
		case StateSolved:
			require.Equal(t, secret, guess, "solved with the wrong code")
			return turn
		case StateExhausted:
			t.Fatalf("secret %s not solved within %d guesses", secret, rules.MaxGuesses)
		}
	}
}

// TestOpening pins the fixed first guess for assorted board shapes.
func TestOpening(t *testing.T) {
	assert.Equal(t, game.Code("AABB"), Opening(game.Classic()))
	assert.Equal(t, game.Code("AABBC"), Opening(game.Rules{Positions: 5, Colors: 6}))
	assert.Equal(t, game.Code("AA"), Opening(game.Rules{Positions: 2, Colors: 3}))
	assert.Equal(t, game.Code("AAAA"), Opening(game.Rules{Positions: 4, Colors: 1}))
	assert.Equal(t, game.Code("AABBA"), Opening(game.Rules{Positions: 5, Colors: 2}))
}

// TestNew starts with the full space as candidates and the opening pending.
func TestNew(t *testing.T) {
	b, err := New(game.Classic())
	require.NoError(t, err)

	assert.Equal(t, StateInit, b.State())
	assert.Equal(t, 1296, b.Remaining())

	guess, err := b.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, game.Code("AABB"), guess)

	_, err = New(game.Rules{Positions: 0, Colors: 6, MaxGuesses: 10})
	assert.Error(t, err, "rules are validated up front")
}

// TestNextGuess_Idempotent reads the pending guess repeatedly at both ends of
// a turn; reading must not advance anything.
func TestNextGuess_Idempotent(t *testing.T) {
	b, err := New(game.Classic())
	require.NoError(t, err)

	g1, err := b.NextGuess()
	require.NoError(t, err)
	g2, err := b.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, g1, g2)
	assert.Equal(t, StateInit, b.State(), "reading the guess does not start the game")
	assert.Equal(t, 1296, b.Remaining())

	_, err = b.SubmitFeedback(game.Feedback{Black: 0, White: 0})
	require.NoError(t, err)

	g3, err := b.NextGuess()
	require.NoError(t, err)
	g4, err := b.NextGuess()
	require.NoError(t, err)
	assert.Equal(t, g3, g4)
	assert.NotEqual(t, g1, g3, "a new guess follows the feedback")
}

// TestScenario_ABCC follows a known game end to end: the opening AABB
// against secret ABCC answers 1B 1W, the candidate set shrinks to exactly
// the codes scoring the same, and the session solves within five guesses.
func TestScenario_ABCC(t *testing.T) {
	r := game.Classic()
	secret := game.Code("ABCC")

	b, err := New(r)
	require.NoError(t, err)

	guess, err := b.NextGuess()
	require.NoError(t, err)
	require.Equal(t, game.Code("AABB"), guess)

	fb := mustScore(guess, secret)
	assert.Equal(t, game.Feedback{Black: 1, White: 1}, fb)

	state, err := b.SubmitFeedback(fb)
	require.NoError(t, err)
	assert.Equal(t, StateGuessing, state)

	// Count the codes that answer 1B 1W to AABB independently; the candidate
	// set must be exactly that bucket.
	want := 0
	for i := 0; i < game.SpaceSize(r); i++ {
		if mustScore(guess, game.CodeAt(r, i)) == fb {
			want++
		}
	}
	assert.Equal(t, want, b.Remaining())
	assert.Contains(t, b.Candidates(), secret)

	turns := 1
	for state != StateSolved {
		g, err := b.NextGuess()
		require.NoError(t, err)
		state, err = b.SubmitFeedback(mustScore(g, secret))
		require.NoError(t, err)
		turns++
	}
	assert.LessOrEqual(t, turns, 5)
	assert.Len(t, b.History(), turns)
}

// TestSolvedIsTerminal ends a session with an all-black answer and checks
// that no further call succeeds.
func TestSolvedIsTerminal(t *testing.T) {
	b, err := New(game.Classic())
	require.NoError(t, err)

	state, err := b.SubmitFeedback(game.Feedback{Black: 4, White: 0})
	require.NoError(t, err)
	assert.Equal(t, StateSolved, state)
	assert.True(t, state.Terminal())
	assert.Equal(t, []game.Code{"AABB"}, b.Candidates(), "only the solved code remains")

	_, err = b.NextGuess()
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = b.SubmitFeedback(game.Feedback{})
	assert.ErrorIs(t, err, ErrGameOver)
}

// TestExhaustedAtBudget gives the session a one-guess budget it cannot meet.
func TestExhaustedAtBudget(t *testing.T) {
	b, err := New(game.Rules{Positions: 4, Colors: 6, MaxGuesses: 1})
	require.NoError(t, err)

	guess, err := b.NextGuess()
	require.NoError(t, err)

	state, err := b.SubmitFeedback(mustScore(guess, "CCDD"))
	require.NoError(t, err)
	assert.Equal(t, StateExhausted, state)
	assert.Greater(t, b.Remaining(), 0, "candidates survive an exhausted game")

	_, err = b.NextGuess()
	assert.ErrorIs(t, err, ErrGameOver)
}

// TestConflictingFeedback feeds an answer no code can produce; the session
// must report the conflict on every later call instead of guessing blind.
func TestConflictingFeedback(t *testing.T) {
	b, err := New(game.Classic())
	require.NoError(t, err)

	// 3B 1W is impossible against any guess: with three exact matches the
	// one remaining symbol has nowhere to be misplaced.
	_, err = b.SubmitFeedback(game.Feedback{Black: 3, White: 1})
	require.ErrorIs(t, err, ErrConflictingFeedback)
	assert.Equal(t, 0, b.Remaining())

	_, err = b.NextGuess()
	assert.ErrorIs(t, err, ErrConflictingFeedback)
	_, err = b.SubmitFeedback(game.Feedback{Black: 0, White: 0})
	assert.ErrorIs(t, err, ErrConflictingFeedback)
}

// TestDeterministicReplay runs two sessions over the same answer sequence;
// every guess must match, there is no hidden randomness in the selection.
func TestDeterministicReplay(t *testing.T) {
	r := game.Classic()
	secret := game.Code("FECA")

	b1, err := New(r)
	require.NoError(t, err)
	var guesses []game.Code
	var answers []game.Feedback
	for {
		g, err := b1.NextGuess()
		require.NoError(t, err)
		fb := mustScore(g, secret)
		guesses = append(guesses, g)
		answers = append(answers, fb)
		state, err := b1.SubmitFeedback(fb)
		require.NoError(t, err)
		if state.Terminal() {
			break
		}
	}

	b2, err := New(r)
	require.NoError(t, err)
	for i, fb := range answers {
		g, err := b2.NextGuess()
		require.NoError(t, err)
		assert.Equal(t, guesses[i], g, "turn %d", i+1)
		_, err = b2.SubmitFeedback(fb)
		require.NoError(t, err)
	}
}

// TestSmallBoardExhaustive sweeps every secret of a 2x3 board. Hand-checking
// the game tree shows four guesses always suffice there.
func TestSmallBoardExhaustive(t *testing.T) {
	r := game.Rules{Positions: 2, Colors: 3, MaxGuesses: 9}
	for i := 0; i < game.SpaceSize(r); i++ {
		turns := playToEnd(t, r, game.CodeAt(r, i))
		assert.LessOrEqual(t, turns, 4, "secret %s", game.CodeAt(r, i))
	}
}

// TestSingleCodeBoard is the degenerate space: the opening is the secret.
func TestSingleCodeBoard(t *testing.T) {
	r := game.Rules{Positions: 3, Colors: 1, MaxGuesses: 1}
	assert.Equal(t, 1, playToEnd(t, r, "AAA"))
}

// TestFiveGuessBound_Sampled strides through the classic space so the bound
// is still exercised under -short.
func TestFiveGuessBound_Sampled(t *testing.T) {
	r := game.Classic()
	for i := 0; i < game.SpaceSize(r); i += 17 {
		turns := playToEnd(t, r, game.CodeAt(r, i))
		require.LessOrEqual(t, turns, 5, "secret %s", game.CodeAt(r, i))
	}
}

// TestFiveGuessBound_FullSweep plays all 1296 classic secrets and checks the
// published bound: no game takes more than five guesses, and some need all
// five.
func TestFiveGuessBound_FullSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("full 1296-secret sweep")
	}
	r := game.Classic()
	worst := 0
	for i := 0; i < game.SpaceSize(r); i++ {
		turns := playToEnd(t, r, game.CodeAt(r, i))
		require.LessOrEqual(t, turns, 5, "secret %s", game.CodeAt(r, i))
		if turns > worst {
			worst = turns
		}
	}
	assert.Equal(t, 5, worst, "no strategy beats five in the worst case")
}
