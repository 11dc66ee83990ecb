// cmd_daily.go
//
// The daily challenge: one classic game per UTC day against a secret derived
// from the date, so everyone sharing a salt faces the same code. One attempt
// per day; the attempt feeds the streak shown by the stats command.

package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mfilippo/mastermind/internal/daily"
	"github.com/mfilippo/mastermind/internal/game"
	"github.com/mfilippo/mastermind/internal/results"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play today's challenge",
	Long: `Play the daily challenge: a classic 4x6 game whose secret is derived
from today's UTC date. One attempt per day, win or lose.`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	rules := game.Classic()
	now := time.Now()
	date := daily.DateKey(now)

	// Unlike free play, the daily needs the database: without it the
	// one-attempt rule cannot hold.
	st, err := openResults()
	if err != nil {
		return fmt.Errorf("the daily challenge needs the results database: %w", err)
	}
	defer st.Close()

	played, err := st.AlreadyPlayed(cmd.Context(), date)
	if err != nil {
		return err
	}
	if played {
		fmt.Printf("You already played the %s challenge. Come back tomorrow!\n", date)
		return nil
	}

	secret := daily.Secret(rules, now, getEnv("MASTERMIND_DAILY_SALT", "mastermind_daily"))

	in := bufio.NewScanner(os.Stdin)
	printWelcome(rules)
	fmt.Printf("Daily challenge for %s. You have %d guesses. Good luck!\n\n", date, rules.MaxGuesses)

	outcome, turns, dur, err := runGame(rules, newFixedMaker(secret), &humanBreaker{in: in, rules: rules})
	if err != nil {
		return finish(err)
	}
	if outcome == "" {
		return nil
	}

	res := results.DailyResult{
		Date:      date,
		Secret:    string(secret),
		Guesses:   turns,
		Won:       outcome == results.OutcomeSolved,
		ElapsedMs: int(dur.Milliseconds()),
	}
	if err := st.InsertDaily(cmd.Context(), res); err != nil {
		log.Warn().Err(err).Str("date", date).Msg("failed to record daily result")
		return nil
	}

	if res.Won {
		streak, err := st.DailyStreak(cmd.Context(), date)
		if err == nil && streak > 1 {
			fmt.Printf("Daily streak: %d days in a row!\n", streak)
		}
	}
	return nil
}
