// players.go
//
// The two player roles of a game. A code maker invents the secret and
// answers guesses; a code breaker produces guesses from the answers. Either
// role can be taken by the computer or by a human at the terminal, which
// gives the four play modes of the play command.

package main

import (
	"bufio"

	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/solver"
)

// Player kinds accepted by the play command and its prompts.
const (
	playerCPU   = "cpu"
	playerHuman = "human"
)

// codeMaker owns the secret side of a game.
type codeMaker interface {
	// MakeCode fixes the secret for the game.
	MakeCode() error
	// Answer scores a guess against the secret.
	Answer(guess game.Code) (game.Feedback, error)
	// Secret reveals the code when the program knows it; ok is false for a
	// human keeping the code in their head.
	Secret() (code game.Code, ok bool)
}

// codeBreaker produces the guesses.
type codeBreaker interface {
	// InitialGuess opens the game before any feedback exists.
	InitialGuess() (game.Code, error)
	// Guess consumes the answer to the previous guess and returns the next.
	Guess(fb game.Feedback) (game.Code, error)
}

// autoMaker holds its secret in memory and scores guesses itself. The pick
// function decides where the secret comes from: random for the computer,
// fixed for the daily challenge, typed for a hot-seat human.
type autoMaker struct {
	secret game.Code
	pick   func() (game.Code, error)
}

func newCPUMaker(rules game.Rules) *autoMaker {
	return &autoMaker{pick: func() (game.Code, error) { return game.RandomCode(rules) }}
}

func newFixedMaker(secret game.Code) *autoMaker {
	return &autoMaker{pick: func() (game.Code, error) { return secret, nil }}
}

func newHotSeatMaker(in *bufio.Scanner, rules game.Rules) *autoMaker {
	return &autoMaker{pick: func() (game.Code, error) {
		return readCode(in, rules)
	}}
}

func (m *autoMaker) MakeCode() error {
	c, err := m.pick()
	if err != nil {
		return err
	}
	m.secret = c
	return nil
}

func (m *autoMaker) Answer(guess game.Code) (game.Feedback, error) {
	return game.Score(guess, m.secret)
}

func (m *autoMaker) Secret() (game.Code, bool) { return m.secret, m.secret != "" }

// manualMaker is a human who keeps the code hidden and types the pegs for
// every guess. Answers are taken on trust; an impossible sequence surfaces
// later as a conflict from the solver.
type manualMaker struct {
	in    *bufio.Scanner
	rules game.Rules
}

func (m *manualMaker) MakeCode() error { return nil } // the code stays in the player's head

func (m *manualMaker) Answer(guess game.Code) (game.Feedback, error) {
	return readFeedback(m.in, m.rules, guess)
}

func (m *manualMaker) Secret() (game.Code, bool) { return "", false }

// cpuBreaker adapts a solver session to the breaker role.
type cpuBreaker struct {
	b *solver.Breaker
}

func newCPUBreaker(rules game.Rules) (*cpuBreaker, error) {
	b, err := solver.New(rules)
	if err != nil {
		return nil, err
	}
	return &cpuBreaker{b: b}, nil
}

func (c *cpuBreaker) InitialGuess() (game.Code, error) { return c.b.NextGuess() }

func (c *cpuBreaker) Guess(fb game.Feedback) (game.Code, error) {
	if _, err := c.b.SubmitFeedback(fb); err != nil {
		return "", err
	}
	return c.b.NextGuess()
}

// humanBreaker prompts for every guess.
type humanBreaker struct {
	in    *bufio.Scanner
	rules game.Rules
}

func (h *humanBreaker) InitialGuess() (game.Code, error) { return readCode(h.in, h.rules) }

func (h *humanBreaker) Guess(game.Feedback) (game.Code, error) { return readCode(h.in, h.rules) }
