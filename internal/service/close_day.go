package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/castlemilk/bankroll/internal/auth"
	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/rs/zerolog"
)

// CloseDay folds a day's live transactions into a closed-day summary, removes the
// consumed transactions and refreshes the state. A date can be closed only once.
func (s *FinancialStateService) CloseDay(ctx context.Context, req *connect.Request[CloseDayRequest]) (*connect.Response[CloseDayResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(model.DateLayout, req.Msg.Date); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid date %q, want YYYY-MM-DD", req.Msg.Date))
	}

	summary, err := CloseDay(ctx, s.store, s.recomputer.Engine(), tenantID, req.Msg.Date)
	if err != nil {
		return nil, auth.WrapStoreError("close day", err)
	}
	s.trigger.Fire(ctx, tenantID, store.ClosedDaysCollection)

	return connect.NewResponse(&CloseDayResponse{Summary: summary}), nil
}

// CloseDay builds and persists the summary for date. The consumed transactions are
// deleted after the summary is stored. Manual adjustments are kept since balances
// still resolve from them; if that delete fails the leftovers are
// ignored by the engine because their date is closed.
func CloseDay(ctx context.Context, s store.Store, e *engine.Engine, tenantID, date string) (*model.ClosedDaySummary, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "CloseDay").
		Str("tenant_id", tenantID).
		Str("date", date).
		Logger()

	if _, err := s.GetClosedDay(ctx, tenantID, date); err == nil {
		return nil, fmt.Errorf("day %s: %w", date, store.ErrAlreadyExists)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	txs, err := s.ListTransactions(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	employees, err := s.ListEmployees(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	summary := engine.SummarizeDay(date, txs, employees, e.Now())
	if err := s.CreateClosedDay(ctx, tenantID, &summary); err != nil {
		return nil, err
	}

	consumed := make([]string, 0, summary.TransactionCount)
	for _, tx := range txs {
		if tx.Date == date && !engine.IsManualAdjustment(tx) {
			consumed = append(consumed, tx.ID)
		}
	}
	if err := s.DeleteTransactions(ctx, tenantID, consumed); err != nil {
		logger.Warn().Err(err).Int("transactions", len(consumed)).Msg("failed to delete closed transactions")
	}

	logger.Info().
		Float64("profit", summary.Profit).
		Int("transactions", summary.TransactionCount).
		Msg("day closed")
	return &summary, nil
}
