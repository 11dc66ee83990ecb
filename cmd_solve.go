// cmd_solve.go
//
// Non-interactive solving: break one code (given or random) and print the
// turn-by-turn deduction, including how many candidates survive each answer.
// Handy for eyeballing the algorithm and for scripting.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/results"
	"github.com/mfilippo/mastermind/internal/solver"
)

var (
	solveRules  = game.Classic()
	solveSecret string

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Break a code with the five-guess algorithm",
		Long: `Break a single code and print every deduction step. With --secret the
code is fixed; otherwise a random one is drawn.`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}
)

func init() {
	solveCmd.Flags().IntVarP(&solveRules.Positions, "positions", "p", solveRules.Positions, "symbols per code")
	solveCmd.Flags().IntVarP(&solveRules.Colors, "colors", "c", solveRules.Colors, "alphabet size")
	solveCmd.Flags().IntVarP(&solveRules.MaxGuesses, "guesses", "g", solveRules.MaxGuesses, "guess budget")
	solveCmd.Flags().StringVarP(&solveSecret, "secret", "s", "", "code to break (random when omitted)")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := solveRules.Validate(); err != nil {
		return err
	}

	var secret game.Code
	var err error
	if solveSecret != "" {
		secret, err = game.ParseCode(solveRules, solveSecret)
	} else {
		secret, err = game.RandomCode(solveRules)
	}
	if err != nil {
		return err
	}

	st, err := openResults()
	if err != nil {
		st = warnNoStore(err)
	} else {
		defer st.Close()
	}

	b, err := solver.New(solveRules)
	if err != nil {
		return err
	}

	fmt.Printf("Breaking %s (%d possible codes)\n\n", styledCode(secret), b.Remaining())
	start := time.Now()
	for {
		guess, err := b.NextGuess()
		if err != nil {
			return err
		}
		fb, err := game.Score(guess, secret)
		if err != nil {
			return err
		}
		state, err := b.SubmitFeedback(fb)
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %s  %s  %d candidates left\n",
			len(b.History()), styledCode(guess), fb, b.Remaining())

		switch state {
		case solver.StateSolved:
			dur := time.Since(start)
			fmt.Printf("\nSolved in %d guesses (%s)\n", len(b.History()), dur.Round(time.Millisecond))
			recordGame(st, results.Game{
				Mode:       results.ModeSolve,
				Breaker:    playerCPU,
				Positions:  solveRules.Positions,
				Colors:     solveRules.Colors,
				MaxGuesses: solveRules.MaxGuesses,
				Secret:     string(secret),
				Guesses:    len(b.History()),
				Outcome:    results.OutcomeSolved,
				DurationMs: int(dur.Milliseconds()),
			})
			return nil
		case solver.StateExhausted:
			dur := time.Since(start)
			fmt.Printf("\nBudget of %d guesses spent; %d candidates remained\n",
				solveRules.MaxGuesses, b.Remaining())
			recordGame(st, results.Game{
				Mode:       results.ModeSolve,
				Breaker:    playerCPU,
				Positions:  solveRules.Positions,
				Colors:     solveRules.Colors,
				MaxGuesses: solveRules.MaxGuesses,
				Secret:     string(secret),
				Guesses:    len(b.History()),
				Outcome:    results.OutcomeExhausted,
				DurationMs: int(dur.Milliseconds()),
			})
			return nil
		}
	}
}
