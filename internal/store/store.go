package store

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/castlemilk/bankroll/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// Store defines every tenant-scoped database operation used by the service.
type Store interface {
	// Employee and platform operations
	ListEmployees(ctx context.Context, tenantID string) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, tenantID string, employee *model.Employee) error
	ListPlatforms(ctx context.Context, tenantID string) ([]model.Platform, error)
	CreatePlatform(ctx context.Context, tenantID string, platform *model.Platform) error

	// Transaction operations
	ListTransactions(ctx context.Context, tenantID string) ([]model.Transaction, error)
	ListTransactionsPage(ctx context.Context, tenantID, date string, pageSize int32, pageToken string) ([]model.Transaction, string, error)
	CreateTransaction(ctx context.Context, tenantID string, tx *model.Transaction) error
	DeleteTransaction(ctx context.Context, tenantID, transactionID string) error
	DeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) error

	// Closed day operations
	ListClosedDays(ctx context.Context, tenantID string) ([]model.ClosedDaySummary, error)
	GetClosedDay(ctx context.Context, tenantID, date string) (*model.ClosedDaySummary, error)
	CreateClosedDay(ctx context.Context, tenantID string, summary *model.ClosedDaySummary) error

	// Financial state operations
	GetFinancialState(ctx context.Context, tenantID string) (*model.FinancialState, error)
	SaveFinancialState(ctx context.Context, tenantID string, state *model.FinancialState) error
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
