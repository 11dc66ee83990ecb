// cmd_stats.go
//
// Lifetime numbers from the results database: totals, solve rate, average
// and best solved game, the daily streak, and the most recent games.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfilippo/mastermind/internal/daily"
	"github.com/mfilippo/mastermind/internal/results"
)

var (
	statsRecent int

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime results",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
)

func init() {
	statsCmd.Flags().IntVarP(&statsRecent, "recent", "n", 10, "recent games to list")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openResults()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	sum, err := st.Summarize(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(styleTitle.Render("Lifetime"))
	if sum.Games == 0 {
		fmt.Println("No games recorded yet. Go play!")
	} else {
		rate := 100 * float64(sum.Solved) / float64(sum.Games)
		fmt.Printf("games %d | solved %d (%.0f%%) | exhausted %d\n", sum.Games, sum.Solved, rate, sum.Exhausted)
		if sum.Solved > 0 {
			fmt.Printf("average guesses %.2f | best game %d\n", sum.AvgGuesses, sum.BestGame)
		}
	}

	streak, err := st.DailyStreak(ctx, daily.DateKey(time.Now()))
	if err != nil {
		return err
	}
	fmt.Printf("daily streak %d\n", streak)

	if sum.Games > 0 && statsRecent > 0 {
		recent, err := st.RecentGames(ctx, statsRecent)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(styleTitle.Render("Recent games"))
		for _, g := range recent {
			secret := g.Secret
			if secret == "" {
				secret = "(hidden)"
			}
			verdict := fmt.Sprintf("solved in %d", g.Guesses)
			if g.Outcome == results.OutcomeExhausted {
				verdict = fmt.Sprintf("unsolved after %d", g.Guesses)
			}
			fmt.Printf("%s  %-5s  %dx%d  %-8s  %s  %s\n",
				g.CreatedAt.Format("2006-01-02 15:04"), g.Mode,
				g.Positions, g.Colors, g.Breaker, secret, verdict)
		}
	}
	fmt.Println()
	return nil
}
