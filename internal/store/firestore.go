package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements the Store interface using Firestore
type FirestoreStore struct {
	client *firestore.Client
	loc    *time.Location
}

// NewFirestoreStore creates a new Firestore-backed store. loc is the business
// timezone used to place timestamps on calendar days while decoding.
func NewFirestoreStore(client *firestore.Client, loc *time.Location) Store {
	if loc == nil {
		loc = time.UTC
	}
	return &FirestoreStore{
		client: client,
		loc:    loc,
	}
}

func (s *FirestoreStore) tenant(tenantID string) *firestore.DocumentRef {
	return s.client.Collection(TenantsCollection).Doc(tenantID)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// applyCursorPagination adds OrderBy + StartAfter + Limit to a query for cursor-based pagination.
// It fetches pageSize+1 docs so the caller can detect whether a next page exists.
func (s *FirestoreStore) applyCursorPagination(query firestore.Query, pageSize int32, pageToken string) (firestore.Query, error) {
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	if pageToken != "" {
		docID, err := DecodePageToken(pageToken)
		if err != nil {
			return query, fmt.Errorf("invalid page token: %w", err)
		}
		query = query.StartAfter(docID)
	}

	if pageSize <= 0 {
		pageSize = 100
	}
	query = query.Limit(int(pageSize) + 1) // +1 to detect next page
	return query, nil
}

// ListEmployees lists every employee of a tenant
func (s *FirestoreStore) ListEmployees(ctx context.Context, tenantID string) ([]model.Employee, error) {
	docs, err := s.tenant(tenantID).Collection(EmployeesCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]model.Employee, 0, len(docs))
	for _, doc := range docs {
		var employee model.Employee
		if err := doc.DataTo(&employee); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("employee_id", doc.Ref.ID).Msg("skipping unreadable employee")
			continue
		}
		employee.ID = doc.Ref.ID
		employees = append(employees, employee)
	}
	return employees, nil
}

// CreateEmployee creates an employee document
func (s *FirestoreStore) CreateEmployee(ctx context.Context, tenantID string, employee *model.Employee) error {
	_, err := s.tenant(tenantID).Collection(EmployeesCollection).Doc(employee.ID).Set(ctx, employee)
	return err
}

// ListPlatforms lists every platform of a tenant
func (s *FirestoreStore) ListPlatforms(ctx context.Context, tenantID string) ([]model.Platform, error) {
	docs, err := s.tenant(tenantID).Collection(PlatformsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}

	platforms := make([]model.Platform, 0, len(docs))
	for _, doc := range docs {
		var platform model.Platform
		if err := doc.DataTo(&platform); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("platform_id", doc.Ref.ID).Msg("skipping unreadable platform")
			continue
		}
		platform.ID = doc.Ref.ID
		platforms = append(platforms, platform)
	}
	return platforms, nil
}

// CreatePlatform creates a platform document
func (s *FirestoreStore) CreatePlatform(ctx context.Context, tenantID string, platform *model.Platform) error {
	_, err := s.tenant(tenantID).Collection(PlatformsCollection).Doc(platform.ID).Set(ctx, platform)
	return err
}

// ListTransactions loads the full live transaction log of a tenant
func (s *FirestoreStore) ListTransactions(ctx context.Context, tenantID string) ([]model.Transaction, error) {
	docs, err := s.tenant(tenantID).Collection(TransactionsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return s.decodeTransactions(ctx, docs), nil
}

// ListTransactionsPage lists transactions page by page, optionally for a single day
func (s *FirestoreStore) ListTransactionsPage(ctx context.Context, tenantID, date string, pageSize int32, pageToken string) ([]model.Transaction, string, error) {
	query := s.tenant(tenantID).Collection(TransactionsCollection).Query
	if date != "" {
		query = query.Where("date", "==", date)
	}

	query, err := s.applyCursorPagination(query, pageSize, pageToken)
	if err != nil {
		return nil, "", err
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	if pageSize <= 0 {
		pageSize = 100
	}

	// Detect next page
	var nextPageToken string
	if len(docs) > int(pageSize) {
		docs = docs[:pageSize]
		nextPageToken = EncodePageToken(docs[pageSize-1].Ref.ID)
	}

	return s.decodeTransactions(ctx, docs), nextPageToken, nil
}

func (s *FirestoreStore) decodeTransactions(ctx context.Context, docs []*firestore.DocumentSnapshot) []model.Transaction {
	logger := zerolog.Ctx(ctx)
	txs := make([]model.Transaction, 0, len(docs))
	for _, doc := range docs {
		tx, warnings, ok := decodeTransaction(doc.Ref.ID, doc.Data(), s.loc)
		for _, w := range warnings {
			logger.Warn().Str("transaction_id", doc.Ref.ID).Msg(w)
		}
		if !ok {
			continue
		}
		txs = append(txs, tx)
	}
	return txs
}

// CreateTransaction creates a transaction document
func (s *FirestoreStore) CreateTransaction(ctx context.Context, tenantID string, tx *model.Transaction) error {
	_, err := s.tenant(tenantID).Collection(TransactionsCollection).Doc(tx.ID).Set(ctx, tx)
	return err
}

// DeleteTransaction deletes a transaction document
func (s *FirestoreStore) DeleteTransaction(ctx context.Context, tenantID, transactionID string) error {
	_, err := s.tenant(tenantID).Collection(TransactionsCollection).Doc(transactionID).Delete(ctx, firestore.Exists)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

// DeleteTransactions deletes a set of transactions with a bulk writer
func (s *FirestoreStore) DeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) error {
	if len(transactionIDs) == 0 {
		return nil
	}

	col := s.tenant(tenantID).Collection(TransactionsCollection)
	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(transactionIDs))
	for _, id := range transactionIDs {
		job, err := bw.Delete(col.Doc(id))
		if err != nil {
			bw.End()
			return fmt.Errorf("failed to queue delete of transaction %s: %w", id, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	var errs []error
	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, fmt.Errorf("delete transaction %s: %w", transactionIDs[i], err))
		}
	}
	return errors.Join(errs...)
}

// ListClosedDays lists every closed-day summary of a tenant
func (s *FirestoreStore) ListClosedDays(ctx context.Context, tenantID string) ([]model.ClosedDaySummary, error) {
	docs, err := s.tenant(tenantID).Collection(ClosedDaysCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list closed days: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	summaries := make([]model.ClosedDaySummary, 0, len(docs))
	for _, doc := range docs {
		summary, warnings, ok := decodeClosedDay(doc.Ref.ID, doc.Data(), s.loc)
		for _, w := range warnings {
			logger.Warn().Str("closed_day_id", doc.Ref.ID).Msg(w)
		}
		if !ok {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetClosedDay retrieves the summary of a single closed date
func (s *FirestoreStore) GetClosedDay(ctx context.Context, tenantID, date string) (*model.ClosedDaySummary, error) {
	doc, err := s.tenant(tenantID).Collection(ClosedDaysCollection).Doc(date).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get closed day: %w", err)
	}

	summary, _, ok := decodeClosedDay(doc.Ref.ID, doc.Data(), s.loc)
	if !ok {
		return nil, fmt.Errorf("failed to parse closed day %s", date)
	}
	return &summary, nil
}

// CreateClosedDay stores a summary keyed by its date. A date can only be closed once.
func (s *FirestoreStore) CreateClosedDay(ctx context.Context, tenantID string, summary *model.ClosedDaySummary) error {
	_, err := s.tenant(tenantID).Collection(ClosedDaysCollection).Doc(summary.Date).Create(ctx, summary)
	if status.Code(err) == codes.AlreadyExists {
		return ErrAlreadyExists
	}
	return err
}

// GetFinancialState retrieves the tenant's aggregate document
func (s *FirestoreStore) GetFinancialState(ctx context.Context, tenantID string) (*model.FinancialState, error) {
	doc, err := s.tenant(tenantID).Collection(FinancialStateCollection).Doc(FinancialStateDocID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get financial state: %w", err)
	}

	var state model.FinancialState
	if err := doc.DataTo(&state); err != nil {
		return nil, fmt.Errorf("failed to parse financial state: %w", err)
	}
	return &state, nil
}

// SaveFinancialState overwrites the tenant's aggregate document
func (s *FirestoreStore) SaveFinancialState(ctx context.Context, tenantID string, state *model.FinancialState) error {
	_, err := s.tenant(tenantID).Collection(FinancialStateCollection).Doc(FinancialStateDocID).Set(ctx, state)
	return err
}
