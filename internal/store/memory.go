package store

import (
	"context"
	"sort"
	"sync"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/google/uuid"
)

// tenantData holds every collection of a single tenant.
type tenantData struct {
	employees    map[string]model.Employee
	platforms    map[string]model.Platform
	transactions map[string]model.Transaction
	closedDays   map[string]model.ClosedDaySummary
	state        *model.FinancialState
}

func newTenantData() *tenantData {
	return &tenantData{
		employees:    make(map[string]model.Employee),
		platforms:    make(map[string]model.Platform),
		transactions: make(map[string]model.Transaction),
		closedDays:   make(map[string]model.ClosedDaySummary),
	}
}

// MemoryStore implements Store interface with in-memory storage
type MemoryStore struct {
	mu      sync.RWMutex
	tenants map[string]*tenantData
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tenants: make(map[string]*tenantData),
	}
}

// tenant returns the tenant's data, creating it on first write. Callers hold m.mu.
func (m *MemoryStore) tenant(tenantID string) *tenantData {
	t, ok := m.tenants[tenantID]
	if !ok {
		t = newTenantData()
		m.tenants[tenantID] = t
	}
	return t
}

// paginateIDs applies cursor-based pagination to a sorted slice of IDs.
// Returns the paginated IDs and the next page token (empty if no more pages).
func paginateIDs(ids []string, pageSize int32, pageToken string) ([]string, string) {
	if pageSize <= 0 {
		pageSize = 100
	}

	sort.Strings(ids)

	if pageToken != "" {
		cursorID, err := DecodePageToken(pageToken)
		if err == nil {
			ids = ids[sort.SearchStrings(ids, cursorID+"\x00"):]
		}
	}

	var nextToken string
	if int32(len(ids)) > pageSize {
		nextToken = EncodePageToken(ids[pageSize-1])
		ids = ids[:pageSize]
	}

	return ids, nextToken
}

// Employee and platform operations

func (m *MemoryStore) ListEmployees(ctx context.Context, tenantID string) ([]model.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return []model.Employee{}, nil
	}
	employees := make([]model.Employee, 0, len(t.employees))
	for _, e := range t.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (m *MemoryStore) CreateEmployee(ctx context.Context, tenantID string, employee *model.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	m.tenant(tenantID).employees[employee.ID] = *employee
	return nil
}

func (m *MemoryStore) ListPlatforms(ctx context.Context, tenantID string) ([]model.Platform, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return []model.Platform{}, nil
	}
	platforms := make([]model.Platform, 0, len(t.platforms))
	for _, p := range t.platforms {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID < platforms[j].ID })
	return platforms, nil
}

func (m *MemoryStore) CreatePlatform(ctx context.Context, tenantID string, platform *model.Platform) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if platform.ID == "" {
		platform.ID = uuid.New().String()
	}
	m.tenant(tenantID).platforms[platform.ID] = *platform
	return nil
}

// Transaction operations

func (m *MemoryStore) ListTransactions(ctx context.Context, tenantID string) ([]model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return []model.Transaction{}, nil
	}
	txs := make([]model.Transaction, 0, len(t.transactions))
	for _, tx := range t.transactions {
		txs = append(txs, tx)
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID < txs[j].ID })
	return txs, nil
}

func (m *MemoryStore) ListTransactionsPage(ctx context.Context, tenantID, date string, pageSize int32, pageToken string) ([]model.Transaction, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return []model.Transaction{}, "", nil
	}

	var ids []string
	for id, tx := range t.transactions {
		if date != "" && tx.Date != date {
			continue
		}
		ids = append(ids, id)
	}

	page, nextToken := paginateIDs(ids, pageSize, pageToken)
	txs := make([]model.Transaction, 0, len(page))
	for _, id := range page {
		txs = append(txs, t.transactions[id])
	}
	return txs, nextToken, nil
}

func (m *MemoryStore) CreateTransaction(ctx context.Context, tenantID string, tx *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	m.tenant(tenantID).transactions[tx.ID] = *tx
	return nil
}

func (m *MemoryStore) DeleteTransaction(ctx context.Context, tenantID, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := t.transactions[transactionID]; !ok {
		return ErrNotFound
	}
	delete(t.transactions, transactionID)
	return nil
}

func (m *MemoryStore) DeleteTransactions(ctx context.Context, tenantID string, transactionIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return nil
	}
	for _, id := range transactionIDs {
		delete(t.transactions, id)
	}
	return nil
}

// Closed day operations

func (m *MemoryStore) ListClosedDays(ctx context.Context, tenantID string) ([]model.ClosedDaySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return []model.ClosedDaySummary{}, nil
	}
	summaries := make([]model.ClosedDaySummary, 0, len(t.closedDays))
	for _, s := range t.closedDays {
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Date < summaries[j].Date })
	return summaries, nil
}

func (m *MemoryStore) GetClosedDay(ctx context.Context, tenantID, date string) (*model.ClosedDaySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok {
		return nil, ErrNotFound
	}
	summary, ok := t.closedDays[date]
	if !ok {
		return nil, ErrNotFound
	}
	return &summary, nil
}

func (m *MemoryStore) CreateClosedDay(ctx context.Context, tenantID string, summary *model.ClosedDaySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.tenant(tenantID)
	if _, exists := t.closedDays[summary.Date]; exists {
		return ErrAlreadyExists
	}
	t.closedDays[summary.Date] = *summary
	return nil
}

// Financial state operations

func (m *MemoryStore) GetFinancialState(ctx context.Context, tenantID string) (*model.FinancialState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tenants[tenantID]
	if !ok || t.state == nil {
		return nil, ErrNotFound
	}
	state := *t.state
	return &state, nil
}

func (m *MemoryStore) SaveFinancialState(ctx context.Context, tenantID string, state *model.FinancialState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *state
	m.tenant(tenantID).state = &saved
	return nil
}
