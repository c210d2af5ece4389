package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/castlemilk/bankroll/internal/auth"
	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/store"
)

// FinancialStateService serves a tenant's financial state and the writes that
// change it.
type FinancialStateService struct {
	store      store.Store
	recomputer *Recomputer
	trigger    *Trigger
}

// NewFinancialStateService creates the service
func NewFinancialStateService(s store.Store, recomputer *Recomputer) *FinancialStateService {
	return &FinancialStateService{
		store:      s,
		recomputer: recomputer,
		trigger:    NewTrigger(recomputer).inProcess(),
	}
}

// GetFinancialState returns the persisted state, computing it first when absent.
func (s *FinancialStateService) GetFinancialState(ctx context.Context, req *connect.Request[GetFinancialStateRequest]) (*connect.Response[GetFinancialStateResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.store.GetFinancialState(ctx, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		state, err = s.recomputer.Recompute(ctx, tenantID, metrics.SourceRead)
	}
	if err != nil {
		return nil, auth.WrapStoreError("get financial state", err)
	}

	return connect.NewResponse(&GetFinancialStateResponse{State: state}), nil
}

// RecalculateFinancialState always recomputes and returns the fresh state.
func (s *FinancialStateService) RecalculateFinancialState(ctx context.Context, req *connect.Request[RecalculateFinancialStateRequest]) (*connect.Response[RecalculateFinancialStateResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.recomputer.Recompute(ctx, tenantID, metrics.SourceManual)
	if err != nil {
		return nil, auth.WrapStoreError("recalculate financial state", err)
	}

	return connect.NewResponse(&RecalculateFinancialStateResponse{State: state}), nil
}
