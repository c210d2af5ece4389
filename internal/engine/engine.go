// Package engine turns a tenant's transaction log and closed-day summaries into the
// tenant's aggregate financial state.
//
// Compute is a pure function of its inputs and the clock: the same dataset always
// yields the same state apart from UpdatedAt. Amounts are accumulated as decimals
// and only converted to float64 when the document is assembled.
package engine

import (
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultTimezone is the business timezone used for day and window boundaries.
const DefaultTimezone = "America/Sao_Paulo"

// Dataset is everything stored for one tenant.
type Dataset struct {
	Employees    []model.Employee
	Platforms    []model.Platform
	Transactions []model.Transaction
	ClosedDays   []model.ClosedDaySummary
}

// Engine computes financial states. It holds no per-tenant state and is safe for
// concurrent use.
type Engine struct {
	loc    *time.Location
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for time windows and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger used for per-run diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New returns an Engine computing windows in loc. A nil loc means UTC.
func New(loc *time.Location, opts ...Option) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	e := &Engine{
		loc:    loc,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Logged returns a copy of e that writes diagnostics to logger, typically the
// logger of the request or event being served.
func (e *Engine) Logged(logger zerolog.Logger) *Engine {
	c := *e
	c.logger = logger
	return &c
}

// Now returns the engine clock's current time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Location returns the business timezone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Compute builds the full financial state for a dataset.
func (e *Engine) Compute(ds Dataset) *model.FinancialState {
	now := e.now()

	r := buildRollup(ds.Transactions, ds.ClosedDays)
	if r.stragglers > 0 {
		e.logger.Debug().
			Int("stragglers", r.stragglers).
			Msg("ignored live transactions dated on closed days")
	}

	state := &model.FinancialState{
		Daily:     make(map[string]model.PeriodTotals, len(r.daily)),
		Monthly:   make(map[string]model.PeriodTotals, len(r.monthly)),
		Employees: aggregateEmployees(ds.Employees, ds.Platforms, ds.Transactions, r),
		Platforms: aggregatePlatforms(ds.Platforms, r),
		UpdatedAt: now,
	}

	var deposits, withdraws, profit decimal.Decimal
	for date, day := range r.daily {
		state.Daily[date] = day.periodTotals()
		deposits = deposits.Add(day.deposits)
		withdraws = withdraws.Add(day.withdraws)
		profit = profit.Add(day.profit)
	}
	for month, m := range r.monthly {
		state.Monthly[month] = m.periodTotals()
	}

	w := summarizeWindows(r.daily, now, e.loc)
	state.Totals = model.Totals{
		Deposits:        deposits.InexactFloat64(),
		Withdraws:       withdraws.InexactFloat64(),
		Profit:          profit.InexactFloat64(),
		ProfitToday:     w.today.InexactFloat64(),
		ProfitThisWeek:  w.week.InexactFloat64(),
		ProfitThisMonth: w.month.InexactFloat64(),
		ProfitThisYear:  w.year.InexactFloat64(),
	}

	e.logger.Debug().
		Int("transactions", len(ds.Transactions)).
		Int("closed_days", len(r.summaryByDate)).
		Int("days", len(state.Daily)).
		Msg("financial state computed")
	return state
}
