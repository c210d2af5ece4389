package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreTenantIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.CreateTransaction(ctx, "tenant-a", &model.Transaction{ID: "tx-1", Amount: 10, Date: "2024-05-06"}))
	require.NoError(t, s.CreateEmployee(ctx, "tenant-a", &model.Employee{ID: "diego", Name: "Diego"}))

	txs, err := s.ListTransactions(ctx, "tenant-b")
	require.NoError(t, err)
	assert.Empty(t, txs)

	employees, err := s.ListEmployees(ctx, "tenant-b")
	require.NoError(t, err)
	assert.Empty(t, employees)

	txs, err = s.ListTransactions(ctx, "tenant-a")
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestMemoryStoreTransactions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	tx := &model.Transaction{Amount: 10, Date: "2024-05-06"}
	require.NoError(t, s.CreateTransaction(ctx, "t", tx))
	assert.NotEmpty(t, tx.ID, "an ID is assigned on create")

	require.NoError(t, s.DeleteTransaction(ctx, "t", tx.ID))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "t", tx.ID), ErrNotFound)
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "unknown", "x"), ErrNotFound)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateTransaction(ctx, "t", &model.Transaction{ID: fmt.Sprintf("tx-%d", i), Date: "2024-05-06"}))
	}
	require.NoError(t, s.DeleteTransactions(ctx, "t", []string{"tx-0", "tx-2", "missing"}))

	txs, err := s.ListTransactions(ctx, "t")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "tx-1", txs[0].ID)
}

func TestMemoryStoreListTransactionsPage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateTransaction(ctx, "t", &model.Transaction{ID: fmt.Sprintf("tx-%d", i), Date: "2024-05-06"}))
	}
	require.NoError(t, s.CreateTransaction(ctx, "t", &model.Transaction{ID: "tx-other", Date: "2024-05-07"}))

	page, next, err := s.ListTransactionsPage(ctx, "t", "2024-05-06", 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-0", "tx-1"}, ids(page))
	require.NotEmpty(t, next)

	page, next, err = s.ListTransactionsPage(ctx, "t", "2024-05-06", 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-2", "tx-3"}, ids(page))

	page, next, err = s.ListTransactionsPage(ctx, "t", "2024-05-06", 2, next)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-4"}, ids(page))
	assert.Empty(t, next)

	page, _, err = s.ListTransactionsPage(ctx, "t", "", 0, "")
	require.NoError(t, err)
	assert.Len(t, page, 6)
}

func TestMemoryStoreClosedDays(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetClosedDay(ctx, "t", "2024-05-06")
	assert.ErrorIs(t, err, ErrNotFound)

	summary := &model.ClosedDaySummary{Date: "2024-05-06", Profit: 10}
	require.NoError(t, s.CreateClosedDay(ctx, "t", summary))
	assert.ErrorIs(t, s.CreateClosedDay(ctx, "t", summary), ErrAlreadyExists)

	got, err := s.GetClosedDay(ctx, "t", "2024-05-06")
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Profit)

	require.NoError(t, s.CreateClosedDay(ctx, "t", &model.ClosedDaySummary{Date: "2024-05-01"}))
	all, err := s.ListClosedDays(ctx, "t")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-05-01", all[0].Date)
}

func TestMemoryStoreFinancialState(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetFinancialState(ctx, "t")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveFinancialState(ctx, "t", &model.FinancialState{Totals: model.Totals{Profit: 1}}))
	require.NoError(t, s.SaveFinancialState(ctx, "t", &model.FinancialState{Totals: model.Totals{Profit: 2}}))

	state, err := s.GetFinancialState(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, 2.0, state.Totals.Profit)
}

func TestPaginateIDs(t *testing.T) {
	ids := []string{"c", "a", "b"}

	page, next := paginateIDs(ids, 2, "")
	assert.Equal(t, []string{"a", "b"}, page)
	assert.Equal(t, EncodePageToken("b"), next)

	page, next = paginateIDs([]string{"c", "a", "b"}, 2, next)
	assert.Equal(t, []string{"c"}, page)
	assert.Empty(t, next)

	page, next = paginateIDs([]string{"a", "b"}, 2, EncodePageToken("b"))
	assert.Empty(t, page)
	assert.Empty(t, next)
}

func ids(txs []model.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}
