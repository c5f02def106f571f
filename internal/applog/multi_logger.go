package applog

import "nurikabe/internal/core"

// MultiLogger fans a single solve's events out to multiple core.Loggers, the
// same way multiHandler fans a log record out to multiple slog.Handlers.
type MultiLogger struct {
	loggers []core.Logger
}

// NewMultiLogger returns a core.Logger that forwards every event to each of
// loggers in order.
func NewMultiLogger(loggers ...core.Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) BeforeApply(g *core.Grid) {
	for _, l := range m.loggers {
		l.BeforeApply(g)
	}
}

func (m *MultiLogger) StrategyApplied(name string) {
	for _, l := range m.loggers {
		l.StrategyApplied(name)
	}
}

func (m *MultiLogger) NoStrategyApplies() {
	for _, l := range m.loggers {
		l.NoStrategyApplies()
	}
}
