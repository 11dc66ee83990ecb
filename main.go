package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mfilippo/mastermind/internal/results"
)

var rootCmd = &cobra.Command{
	Use:   "mastermind",
	Short: "Play and solve Mastermind from the terminal",
	Long: `Mastermind in the terminal: guess the computer's code, let the
five-guess algorithm break yours, play the daily challenge, or sweep the
whole code space and watch the worst case.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		// Logs go to stderr; keep them quiet by default so they never mix
		// into the board output. LOG_LEVEL=info shows migrations etc.
		if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openResults opens the results database at MASTERMIND_DB. Callers that can
// play without history treat an error here as a warning, not a stop.
func openResults() (*results.Store, error) {
	return results.Open(getEnv("MASTERMIND_DB", "data/mastermind.db"))
}

// warnNoStore downgrades a results-store failure to a log line and returns a
// nil store; recording helpers treat nil as "skip".
func warnNoStore(err error) *results.Store {
	log.Warn().Err(err).Msg("results database unavailable; this game will not be recorded")
	return nil
}

// recordGame best-effort persists a finished game; a nil store skips and a
// write failure is only logged, never surfaced into the game.
func recordGame(st *results.Store, g results.Game) {
	if st == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := st.InsertGame(ctx, g); err != nil {
		log.Warn().Err(err).Str("mode", g.Mode).Msg("failed to record game")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
