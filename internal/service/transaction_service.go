package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/castlemilk/bankroll/internal/auth"
	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/google/uuid"
)

// CreateTransaction records a deposit or withdrawal and refreshes the state
func (s *FinancialStateService) CreateTransaction(ctx context.Context, req *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	txType, ok := model.ParseTransactionType(req.Msg.Type)
	if !ok {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown transaction type %q", req.Msg.Type))
	}
	if err := validateAmount(req.Msg.Amount); err != nil {
		return nil, err
	}
	if req.Msg.EmployeeID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("employee_id is required"))
	}
	date, err := s.resolveDate(req.Msg.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tx := &model.Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Amount:      req.Msg.Amount,
		EmployeeID:  req.Msg.EmployeeID,
		PlatformID:  req.Msg.PlatformID,
		Date:        date,
		Description: strings.TrimSpace(req.Msg.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateTransaction(ctx, tenantID, tx); err != nil {
		return nil, auth.WrapStoreError("create transaction", err)
	}
	s.trigger.Fire(ctx, tenantID, store.TransactionsCollection)

	return connect.NewResponse(&CreateTransactionResponse{Transaction: tx}), nil
}

// DeleteTransaction removes a live transaction and refreshes the state
func (s *FinancialStateService) DeleteTransaction(ctx context.Context, req *connect.Request[DeleteTransactionRequest]) (*connect.Response[DeleteTransactionResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.TransactionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("transaction_id is required"))
	}

	if err := s.store.DeleteTransaction(ctx, tenantID, req.Msg.TransactionID); err != nil {
		return nil, auth.WrapStoreError("delete transaction", err)
	}
	s.trigger.Fire(ctx, tenantID, store.TransactionsCollection)

	return connect.NewResponse(&DeleteTransactionResponse{}), nil
}

// ListTransactions lists live transactions, optionally for one day
func (s *FinancialStateService) ListTransactions(ctx context.Context, req *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Date != "" {
		if _, err := time.Parse(model.DateLayout, req.Msg.Date); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid date %q", req.Msg.Date))
		}
	}

	pageSize := auth.NormalizePageSize(req.Msg.PageSize)
	txs, nextPageToken, err := s.store.ListTransactionsPage(ctx, tenantID, req.Msg.Date, pageSize, req.Msg.PageToken)
	if err != nil {
		return nil, auth.WrapStoreError("list transactions", err)
	}

	return connect.NewResponse(&ListTransactionsResponse{
		Transactions:  txs,
		NextPageToken: nextPageToken,
	}), nil
}

// AdjustBalance records a manual adjustment that overrides the computed balance of
// an employee on a platform.
func (s *FinancialStateService) AdjustBalance(ctx context.Context, req *connect.Request[AdjustBalanceRequest]) (*connect.Response[AdjustBalanceResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.EmployeeID == "" || req.Msg.PlatformID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("employee_id and platform_id are required"))
	}
	if err := validateAmount(req.Msg.Balance); err != nil {
		return nil, err
	}
	date, err := s.resolveDate(req.Msg.Date)
	if err != nil {
		return nil, err
	}

	description := engine.ManualAdjustmentMarker
	if note := strings.TrimSpace(req.Msg.Note); note != "" {
		description += " " + note
	}

	now := s.now()
	tx := &model.Transaction{
		ID:          uuid.New().String(),
		Type:        model.TransactionTypeDeposit,
		Amount:      req.Msg.Balance,
		EmployeeID:  req.Msg.EmployeeID,
		PlatformID:  req.Msg.PlatformID,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateTransaction(ctx, tenantID, tx); err != nil {
		return nil, auth.WrapStoreError("adjust balance", err)
	}
	s.trigger.Fire(ctx, tenantID, store.TransactionsCollection)

	return connect.NewResponse(&AdjustBalanceResponse{Transaction: tx}), nil
}

// CreateEmployee registers an employee
func (s *FinancialStateService) CreateEmployee(ctx context.Context, req *connect.Request[CreateEmployeeRequest]) (*connect.Response[CreateEmployeeResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name is required"))
	}

	employee := &model.Employee{ID: uuid.New().String(), Name: name}
	if err := s.store.CreateEmployee(ctx, tenantID, employee); err != nil {
		return nil, auth.WrapStoreError("create employee", err)
	}

	return connect.NewResponse(&CreateEmployeeResponse{Employee: employee}), nil
}

// CreatePlatform registers a platform
func (s *FinancialStateService) CreatePlatform(ctx context.Context, req *connect.Request[CreatePlatformRequest]) (*connect.Response[CreatePlatformResponse], error) {
	tenantID, err := auth.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name is required"))
	}

	platform := &model.Platform{ID: uuid.New().String(), Name: name}
	if err := s.store.CreatePlatform(ctx, tenantID, platform); err != nil {
		return nil, auth.WrapStoreError("create platform", err)
	}

	return connect.NewResponse(&CreatePlatformResponse{Platform: platform}), nil
}

func (s *FinancialStateService) now() time.Time {
	return s.recomputer.Engine().Now()
}

// resolveDate validates a YYYY-MM-DD day, defaulting to today in the business timezone.
func (s *FinancialStateService) resolveDate(date string) (string, error) {
	if date == "" {
		e := s.recomputer.Engine()
		return e.Now().In(e.Location()).Format(model.DateLayout), nil
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return "", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date))
	}
	return date, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be a non-negative number"))
	}
	return nil
}
