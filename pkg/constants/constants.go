// Package constants holds values shared across the server, the batch CLI,
// and their supporting packages.
package constants

import "time"

// Difficulty labels carried as puzzle metadata (display only; the solver
// itself is difficulty-agnostic). Load validates every puzzle's Difficulty
// field against this set.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// SolveTimeout bounds how long POST /solve and POST /solve/trace will run
// the solver before aborting the request with a 504.
const SolveTimeout = 10 * time.Second

// Solver outcome status strings, used by the HTTP API and the batch CLI's
// summary output.
const (
	StatusSolved            = "solved"
	StatusContradiction     = "contradiction"
	StatusNoStrategyApplies = "no_strategy_applies"
)

// APIVersion is reported by GET /health.
const APIVersion = "0.1.0"

// DefaultPort is used when the server's PORT environment variable is unset.
const DefaultPort = "8080"

// DateFormat is the UTC calendar-day format used for daily puzzle seeding.
const DateFormat = "2006-01-02"
