package pacing

import (
	"log/slog"
	"time"

	"mesa-pacing/internal/core/domain"
)

// Engine builds per-item and container pacing results and billing
// schedules. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostics. The engine only logs at
// debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the zone in which "today" is decided. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewEngine returns an Engine with a discarding logger, the wall clock and
// UTC unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the current calendar date in the engine's location.
func (e *Engine) Today() domain.Date {
	return domain.DateOf(e.now().In(e.loc))
}

// resolveAsOf picks the cutoff date: the caller's value when given, else
// today clamped to the window end.
func (e *Engine) resolveAsOf(asOf *domain.Date, window domain.Window) domain.Date {
	if asOf != nil {
		return *asOf
	}
	today := e.Today()
	if window.EndDate == nil {
		return today
	}
	return domain.MinDate(today, *window.EndDate)
}
