// internal/results/store.go
//
// Queries over the results database: finished games, daily-challenge
// attempts, and the aggregates behind the stats command. Writes are
// best-effort from the caller's point of view; a missing database never
// blocks a game.

package results

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Outcomes recorded for a finished game.
const (
	OutcomeSolved    = "solved"
	OutcomeExhausted = "exhausted"
)

// Game modes recorded in the games table.
const (
	ModePlay  = "play"
	ModeSolve = "solve"
)

// Game is one finished game, one row of the games table.
type Game struct {
	ID         string
	Mode       string // play | solve
	Breaker    string // cpu | human
	Positions  int
	Colors     int
	MaxGuesses int
	Secret     string // empty when the code was never revealed
	Guesses    int
	Outcome    string // solved | exhausted
	DurationMs int
	CreatedAt  time.Time
}

// DailyResult is one daily-challenge attempt; at most one row per UTC date.
type DailyResult struct {
	Date      string // "YYYY-MM-DD"
	Secret    string
	Guesses   int
	Won       bool
	ElapsedMs int
}

// Summary aggregates the lifetime numbers shown by the stats command.
type Summary struct {
	Games      int
	Solved     int
	Exhausted  int
	AvgGuesses float64 // over solved games only
	BestGame   int     // fewest guesses in a solved game, 0 when none
}

// Store wraps the open database handle. Obtain one with Open.
type Store struct {
	db *sql.DB
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// InsertGame persists a finished game and returns the generated row id.
func (s *Store) InsertGame(ctx context.Context, g Game) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO games
            (id, mode, breaker, positions, colors, max_guesses, secret, guesses, outcome, duration_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, g.Mode, g.Breaker, g.Positions, g.Colors, g.MaxGuesses,
		g.Secret, g.Guesses, g.Outcome, g.DurationMs,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// RecentGames returns the latest finished games, newest first. Default limit
// is 10 if not specified.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]Game, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, mode, breaker, positions, colors, max_guesses, secret, guesses, outcome, duration_ms, created_at
        FROM games
        ORDER BY rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Game, 0, limit)
	for rows.Next() {
		var g Game
		var created string
		if err := rows.Scan(&g.ID, &g.Mode, &g.Breaker, &g.Positions, &g.Colors, &g.MaxGuesses,
			&g.Secret, &g.Guesses, &g.Outcome, &g.DurationMs, &created); err != nil {
			return nil, err
		}
		g.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, g)
	}
	return out, rows.Err()
}

// Summarize aggregates every recorded game.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
               COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
               COALESCE(AVG(CASE WHEN outcome = ? THEN guesses END), 0),
               COALESCE(MIN(CASE WHEN outcome = ? THEN guesses END), 0)
        FROM games`,
		OutcomeSolved, OutcomeExhausted, OutcomeSolved, OutcomeSolved,
	).Scan(&sum.Games, &sum.Solved, &sum.Exhausted, &sum.AvgGuesses, &sum.BestGame)
	return sum, err
}

// AlreadyPlayed reports whether a daily result exists for the given date.
func (s *Store) AlreadyPlayed(ctx context.Context, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE date=?`, date,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// InsertDaily records a daily attempt. The date is the primary key, so a
// repeat insert for the same day is ignored without error.
func (s *Store) InsertDaily(ctx context.Context, r DailyResult) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO daily_results
            (date, secret, guesses, won, elapsed_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.Date, r.Secret, r.Guesses, won, r.ElapsedMs,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// DailyStreak counts consecutive winning days ending at the given date. An
// unplayed "today" does not break a run that is alive through yesterday.
func (s *Store) DailyStreak(ctx context.Context, today string) (int, error) {
	expect, err := time.Parse("2006-01-02", today)
	if err != nil {
		return 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, won FROM daily_results ORDER BY date DESC`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	streak := 0
	first := true
	for rows.Next() {
		var date string
		var won int
		if err := rows.Scan(&date, &won); err != nil {
			return 0, err
		}
		d, err := time.Parse("2006-01-02", date)
		if err != nil {
			return 0, err
		}

		if first {
			first = false
			// The newest row must be today or yesterday to start a run.
			if !d.Equal(expect) && !d.Equal(expect.AddDate(0, 0, -1)) {
				break
			}
			expect = d
		} else if !d.Equal(expect) {
			break
		}
		if won == 0 {
			break
		}
		streak++
		expect = expect.AddDate(0, 0, -1)
	}
	return streak, rows.Err()
}
