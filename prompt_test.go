// prompt_test.go
//
// The stdin readers: retry-until-valid behaviour and EOF reporting, driven
// by scripted input.

package main

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfilippo/mastermind/internal/game"
)

func scripted(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

// TestReadCode_RetriesUntilValid skips garbage lines and returns the first
// well-formed code, canonicalised.
func TestReadCode_RetriesUntilValid(t *testing.T) {
	in := scripted("xyz", "ab", "abcf")
	code, err := readCode(in, game.Classic())
	require.NoError(t, err)
	assert.Equal(t, game.Code("ABCF"), code)
}

// TestReadCode_EOF reports a closed stream instead of looping.
func TestReadCode_EOF(t *testing.T) {
	in := scripted()
	_, err := readCode(in, game.Classic())
	assert.ErrorIs(t, err, io.EOF)
}

// TestReadFeedback_RetriesUntilPlausible rejects impossible peg counts and
// accepts both input forms.
func TestReadFeedback_RetriesUntilPlausible(t *testing.T) {
	in := scripted("9 9", "31", "1 2")
	fb, err := readFeedback(in, game.Classic(), "AABB")
	require.NoError(t, err)
	assert.Equal(t, game.Feedback{Black: 1, White: 2}, fb)
}

// TestConfirm only treats y/yes as yes.
func TestConfirm(t *testing.T) {
	yes, err := confirm(scripted("Y"), "? ")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := confirm(scripted("nope"), "? ")
	require.NoError(t, err)
	assert.False(t, no)
}

// TestChoosePlayer honours presets and falls back to prompting.
func TestChoosePlayer(t *testing.T) {
	kind, err := choosePlayer(scripted(), speakerMaker, "CPU")
	require.NoError(t, err)
	assert.Equal(t, playerCPU, kind, "a preset flag skips the prompt")

	_, err = choosePlayer(scripted(), speakerMaker, "robot")
	assert.Error(t, err, "an unknown preset is rejected, not prompted around")

	kind, err = choosePlayer(scripted("banana", "human"), speakerBreaker, "")
	require.NoError(t, err)
	assert.Equal(t, playerHuman, kind)
}
