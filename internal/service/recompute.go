package service

import (
	"context"
	"fmt"

	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Recomputer reloads a tenant's dataset, runs the engine and overwrites the tenant's
// financial state document. Runs for the same tenant may overlap; the last one to
// persist wins.
type Recomputer struct {
	store  store.Store
	engine *engine.Engine
}

// NewRecomputer creates a Recomputer
func NewRecomputer(s store.Store, e *engine.Engine) *Recomputer {
	return &Recomputer{
		store:  s,
		engine: e,
	}
}

// Engine returns the engine used for computations.
func (r *Recomputer) Engine() *engine.Engine {
	return r.engine
}

// Recompute computes and persists the tenant's state. source labels the caller in
// logs and metrics.
func (r *Recomputer) Recompute(ctx context.Context, tenantID, source string) (*model.FinancialState, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "Recompute").
		Str("tenant_id", tenantID).
		Str("source", source).
		Logger()
	done := metrics.StartRecompute(source)

	logger.Debug().Msg("computing financial state")
	ds, err := r.load(ctx, tenantID)
	if err != nil {
		done(metrics.ResultError)
		return nil, err
	}

	state := r.engine.Logged(logger).Compute(ds)

	if err := r.store.SaveFinancialState(ctx, tenantID, state); err != nil {
		done(metrics.ResultError)
		return nil, fmt.Errorf("save financial state: %w", err)
	}
	done(metrics.ResultSuccess)

	logger.Info().
		Float64("profit", state.Totals.Profit).
		Int("days", len(state.Daily)).
		Int("employees", len(state.Employees)).
		Msg("financial state persisted")
	return state, nil
}

// load reads the four collections concurrently.
func (r *Recomputer) load(ctx context.Context, tenantID string) (engine.Dataset, error) {
	var ds engine.Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := r.store.ListEmployees(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("load employees: %w", err)
		}
		ds.Employees = employees
		return nil
	})
	g.Go(func() error {
		platforms, err := r.store.ListPlatforms(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("load platforms: %w", err)
		}
		ds.Platforms = platforms
		return nil
	})
	g.Go(func() error {
		txs, err := r.store.ListTransactions(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("load transactions: %w", err)
		}
		ds.Transactions = txs
		return nil
	})
	g.Go(func() error {
		closed, err := r.store.ListClosedDays(gctx, tenantID)
		if err != nil {
			return fmt.Errorf("load closed days: %w", err)
		}
		ds.ClosedDays = closed
		return nil
	})

	if err := g.Wait(); err != nil {
		return engine.Dataset{}, err
	}
	return ds, nil
}
