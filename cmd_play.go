// cmd_play.go
//
// The interactive game. Both roles can be taken by the computer or a human,
// so the one command covers guessing against the machine, letting the
// machine break your code, and hot-seat games between two people. The game
// runs as a dialogue between the roles, with the board redrawn after every
// answer, and finished games land in the results database.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/results"
	"github.com/mfilippo/mastermind/internal/solver"
)

var (
	playRules   = game.Classic()
	playMaker   string
	playBreaker string

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play a game of Mastermind. Each role is taken by the computer or by a
human at the terminal; without flags the command asks who plays what.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
)

func init() {
	playCmd.Flags().IntVarP(&playRules.Positions, "positions", "p", playRules.Positions, "symbols per code")
	playCmd.Flags().IntVarP(&playRules.Colors, "colors", "c", playRules.Colors, "alphabet size")
	playCmd.Flags().IntVarP(&playRules.MaxGuesses, "guesses", "g", playRules.MaxGuesses, "guess budget")
	playCmd.Flags().StringVar(&playMaker, "maker", "", "code maker player: cpu or human (prompted when omitted)")
	playCmd.Flags().StringVar(&playBreaker, "breaker", "", "code breaker player: cpu or human (prompted when omitted)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := playRules.Validate(); err != nil {
		return err
	}

	st, err := openResults()
	if err != nil {
		st = warnNoStore(err)
	} else {
		defer st.Close()
	}

	in := bufio.NewScanner(os.Stdin)
	printWelcome(playRules)

	for {
		makerKind, err := choosePlayer(in, speakerMaker, playMaker)
		if err != nil {
			return finish(err)
		}
		breakerKind, err := choosePlayer(in, speakerBreaker, playBreaker)
		if err != nil {
			return finish(err)
		}

		maker := newMaker(in, playRules, makerKind, breakerKind)
		breaker, err := newBreaker(in, playRules, breakerKind)
		if err != nil {
			return err
		}

		outcome, turns, dur, err := runGame(playRules, maker, breaker)
		if err != nil {
			return finish(err)
		}
		if outcome != "" {
			secret := ""
			if s, ok := maker.Secret(); ok {
				secret = string(s)
			}
			recordGame(st, results.Game{
				Mode:       results.ModePlay,
				Breaker:    breakerKind,
				Positions:  playRules.Positions,
				Colors:     playRules.Colors,
				MaxGuesses: playRules.MaxGuesses,
				Secret:     secret,
				Guesses:    turns,
				Outcome:    outcome,
				DurationMs: int(dur.Milliseconds()),
			})
		}

		again, err := confirm(in, ">>> Do you want to play again? [y/n]: ")
		if err != nil || !again {
			sayGoodbye()
			return nil
		}
		fmt.Println()
	}
}

// newMaker picks the maker implementation for the chosen kinds. A human
// maker facing the computer keeps the code in their head and answers the
// pegs; facing another human, the code is typed once and scored
// automatically so the pegs are always honest.
func newMaker(in *bufio.Scanner, rules game.Rules, makerKind, breakerKind string) codeMaker {
	if makerKind == playerCPU {
		return newCPUMaker(rules)
	}
	if breakerKind == playerCPU {
		return &manualMaker{in: in, rules: rules}
	}
	return newHotSeatMaker(in, rules)
}

// newBreaker picks the breaker implementation for the chosen kind.
func newBreaker(in *bufio.Scanner, rules game.Rules, kind string) (codeBreaker, error) {
	if kind == playerCPU {
		return newCPUBreaker(rules)
	}
	return &humanBreaker{in: in, rules: rules}, nil
}

// runGame plays one full game between the maker and the breaker and reports
// how it ended. An empty outcome means the game was abandoned because the
// answers contradicted each other; that is a finished conversation, not an
// error.
func runGame(rules game.Rules, maker codeMaker, breaker codeBreaker) (outcome string, turns int, dur time.Duration, err error) {
	say(speakerMaker, "Make a secret code")
	if err := maker.MakeCode(); err != nil {
		return "", 0, 0, err
	}

	say(speakerBreaker, "Make a guess")
	guess, err := breaker.InitialGuess()
	if err != nil {
		return "", 0, 0, err
	}

	start := time.Now()
	var history []game.Turn
	for {
		say(speakerBreaker, "Guess is %s", styledCode(guess))
		fb, err := maker.Answer(guess)
		if err != nil {
			return "", 0, 0, err
		}
		say(speakerMaker, "Answer is %s", fb)
		history = append(history, game.Turn{Guess: guess, Feedback: fb})
		fmt.Print(renderBoard(rules, history))

		if fb.Black == rules.Positions {
			say(speakerBreaker, "The code is %s! Broke it in %d guesses", styledCode(guess), len(history))
			return results.OutcomeSolved, len(history), time.Since(start), nil
		}
		if len(history) >= rules.MaxGuesses {
			say(speakerMaker, "Out of guesses!")
			if secret, ok := maker.Secret(); ok {
				say(speakerMaker, "The code was %s", styledCode(secret))
			}
			return results.OutcomeExhausted, len(history), time.Since(start), nil
		}

		say(speakerBreaker, "Make a guess")
		guess, err = breaker.Guess(fb)
		if err != nil {
			if errors.Is(err, solver.ErrConflictingFeedback) {
				say(speakerBreaker, "No code matches those answers; one of them must be wrong. I give up!")
				return "", len(history), time.Since(start), nil
			}
			return "", 0, 0, err
		}
	}
}

// finish turns an EOF from the prompts into a clean goodbye.
func finish(err error) error {
	if errors.Is(err, io.EOF) {
		sayGoodbye()
		return nil
	}
	return err
}

func sayGoodbye() {
	fmt.Println()
	fmt.Println("Goodbye!")
}
