package applog

import (
	"log/slog"

	"nurikabe/internal/core"
)

// SolverLogger adapts the package logger to core.Logger, so solve loop
// progress shows up in the structured log stream alongside everything
// else. It never retains grid state, unlike core.TraceLogger.
type SolverLogger struct {
	iteration int
}

// NewSolverLogger returns a core.Logger that logs each solve loop event at
// debug level.
func NewSolverLogger() *SolverLogger {
	return &SolverLogger{}
}

func (s *SolverLogger) BeforeApply(g *core.Grid) {
	s.iteration++
	logger.Debug("solve iteration", slog.Int("iteration", s.iteration))
}

func (s *SolverLogger) StrategyApplied(name string) {
	logger.Debug("strategy applied", slog.String("strategy", name))
}

func (s *SolverLogger) NoStrategyApplies() {
	logger.Debug("no strategy applies, fixed point reached")
}
