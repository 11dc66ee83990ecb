// internal/game/score_test.go
//
// Scorer behaviour: known boards, multiset handling of repeated colours, and
// the algebraic properties every scoring implementation must keep (symmetry,
// self-score, peg bound, relabelling invariance).

package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScore_KnownCases pins the scorer to hand-checked boards, including the
// repeated-colour traps that break naive counting.
func TestScore_KnownCases(t *testing.T) {
	cases := []struct {
		name   string
		guess  Code
		target Code
		want   Feedback
	}{
		{"all exact", "ABCD", "ABCD", Feedback{Black: 4, White: 0}},
		{"no overlap", "AAAA", "BBBB", Feedback{Black: 0, White: 0}},
		{"full reversal", "ABCD", "DCBA", Feedback{Black: 0, White: 4}},
		{"swapped pairs", "AABB", "BBAA", Feedback{Black: 0, White: 4}},
		{"interleaved pairs", "ABAB", "AABB", Feedback{Black: 2, White: 2}},
		{"opening vs ABCC", "AABB", "ABCC", Feedback{Black: 1, White: 1}},
		{"repeat guess single target", "AABB", "AAAA", Feedback{Black: 2, White: 0}},
		{"extra guess copies score once", "AABC", "ADAA", Feedback{Black: 1, White: 1}},
		{"three exact one spare", "AAAB", "AAAA", Feedback{Black: 3, White: 0}},
		{"rotated ends", "AAAB", "BAAA", Feedback{Black: 2, White: 2}},
		{"five wide reversal", "ABCDE", "EDCBA", Feedback{Black: 1, White: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Score(tc.guess, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "score(%s, %s)", tc.guess, tc.target)
		})
	}
}

// TestScore_LengthMismatch rejects codes of different lengths outright.
func TestScore_LengthMismatch(t *testing.T) {
	_, err := Score("AAB", "AABB")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

// TestScore_SelfIsAllBlack checks Score(x, x) == (len(x), 0) across random
// codes, repeats included.
func TestScore_SelfIsAllBlack(t *testing.T) {
	r := Classic()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := CodeAt(r, rng.Intn(SpaceSize(r)))
		fb, err := Score(c, c)
		require.NoError(t, err)
		assert.Equal(t, Feedback{Black: r.Positions, White: 0}, fb, "self-score of %s", c)
	}
}

// TestScore_SymmetricAndBounded checks that swapping guess and target never
// changes the pegs and that black+white never exceeds the position count.
func TestScore_SymmetricAndBounded(t *testing.T) {
	r := Rules{Positions: 5, Colors: 7, MaxGuesses: 10}
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a := CodeAt(r, rng.Intn(SpaceSize(r)))
		b := CodeAt(r, rng.Intn(SpaceSize(r)))

		ab, err := Score(a, b)
		require.NoError(t, err)
		ba, err := Score(b, a)
		require.NoError(t, err)

		assert.Equal(t, ab, ba, "score(%s, %s) vs score(%s, %s)", a, b, b, a)
		assert.LessOrEqual(t, ab.Black+ab.White, r.Positions, "peg total for %s vs %s", a, b)
		assert.GreaterOrEqual(t, ab.Black, 0)
		assert.GreaterOrEqual(t, ab.White, 0)
	}
}

// TestScore_RelabelInvariance renames the colours of both codes with the same
// permutation; the pegs must not move.
func TestScore_RelabelInvariance(t *testing.T) {
	r := Classic()
	rng := rand.New(rand.NewSource(3))

	relabel := func(c Code, perm []int) Code {
		b := []byte(c)
		for i := range b {
			b[i] = byte('A') + byte(perm[b[i]-'A'])
		}
		return Code(b)
	}

	for i := 0; i < 200; i++ {
		a := CodeAt(r, rng.Intn(SpaceSize(r)))
		b := CodeAt(r, rng.Intn(SpaceSize(r)))
		perm := rng.Perm(r.Colors)

		plain, err := Score(a, b)
		require.NoError(t, err)
		renamed, err := Score(relabel(a, perm), relabel(b, perm))
		require.NoError(t, err)

		assert.Equal(t, plain, renamed, "relabelled score of %s vs %s with %v", a, b, perm)
	}
}
