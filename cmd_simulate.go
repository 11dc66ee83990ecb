// cmd_simulate.go
//
// Sweeps the whole code space: one full game per possible secret, spread
// over a worker pool, then a histogram of the guess counts. On the classic
// 4x6 board with a budget of five or more, every secret must fall within
// five guesses; the sweep makes that bound visible instead of taking it on
// faith.

package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/solver"
)

var (
	simRules   = game.Classic()
	simWorkers int

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Solve every possible code and report the distribution",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
)

func init() {
	simulateCmd.Flags().IntVarP(&simRules.Positions, "positions", "p", simRules.Positions, "symbols per code")
	simulateCmd.Flags().IntVarP(&simRules.Colors, "colors", "c", simRules.Colors, "alphabet size")
	simulateCmd.Flags().IntVarP(&simRules.MaxGuesses, "guesses", "g", simRules.MaxGuesses, "guess budget")
	simulateCmd.Flags().IntVarP(&simWorkers, "workers", "w", runtime.NumCPU(), "parallel games")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if err := simRules.Validate(); err != nil {
		return err
	}
	if simWorkers < 1 {
		simWorkers = 1
	}

	size := game.SpaceSize(simRules)
	log.Info().Int("codes", size).Int("workers", simWorkers).Msg("starting sweep")

	// One slot per secret; workers write disjoint indexes, so no locking.
	guesses := make([]int, size)
	start := time.Now()

	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(simWorkers)
	for i := 0; i < size; i++ {
		i := i // per-iteration copy; the go directive predates Go 1.22 loop scoping
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			secret := game.CodeAt(simRules, i)
			n, err := playOut(simRules, secret)
			if err != nil {
				return fmt.Errorf("secret %s: %w", secret, err)
			}
			guesses[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	printDistribution(simRules, guesses, time.Since(start))
	return nil
}

// playOut plays one complete solver game against a known secret and returns
// the number of guesses used.
func playOut(rules game.Rules, secret game.Code) (int, error) {
	b, err := solver.New(rules)
	if err != nil {
		return 0, err
	}
	for {
		guess, err := b.NextGuess()
		if err != nil {
			return len(b.History()), err
		}
		fb, err := game.Score(guess, secret)
		if err != nil {
			return len(b.History()), err
		}
		state, err := b.SubmitFeedback(fb)
		if err != nil {
			return len(b.History()), err
		}
		switch state {
		case solver.StateSolved:
			return len(b.History()), nil
		case solver.StateExhausted:
			return len(b.History()), fmt.Errorf("unsolved after %d guesses", len(b.History()))
		}
	}
}

// printDistribution renders the guess histogram and the headline numbers.
func printDistribution(rules game.Rules, guesses []int, elapsed time.Duration) {
	hist := make([]int, rules.MaxGuesses+1)
	total, worst, worstIdx := 0, 0, 0
	for i, n := range guesses {
		hist[n]++
		total += n
		if n > worst {
			worst, worstIdx = n, i
		}
	}
	peak := 0
	for _, c := range hist {
		if c > peak {
			peak = c
		}
	}

	fmt.Printf("\nSwept %d secrets in %s\n\n", len(guesses), elapsed.Round(time.Millisecond))
	for n := 1; n <= rules.MaxGuesses; n++ {
		if hist[n] == 0 {
			continue
		}
		bar := strings.Repeat("█", 1+hist[n]*40/peak)
		fmt.Printf("%2d guesses %5d  %s\n", n, hist[n], styleFrame.Render(bar))
	}
	fmt.Printf("\naverage %.4f guesses, worst case %d (e.g. %s)\n",
		float64(total)/float64(len(guesses)), worst, game.CodeAt(rules, worstIdx))
}
