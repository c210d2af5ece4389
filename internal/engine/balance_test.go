package engine

import (
	"testing"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestResolveBalance(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	history := []model.Transaction{
		{ID: "t1", Type: model.TransactionTypeDeposit, Amount: 100, EmployeeID: "emp-a", PlatformID: "plat-x", CreatedAt: base},
		{ID: "t2", Type: model.TransactionTypeWithdraw, Amount: 150, EmployeeID: "emp-a", PlatformID: "plat-x", CreatedAt: base.Add(time.Hour)},
		{ID: "t3", Type: model.TransactionTypeWithdraw, Amount: 999, EmployeeID: "emp-b", PlatformID: "plat-x", CreatedAt: base},
		{ID: "t4", Type: model.TransactionTypeWithdraw, Amount: 999, EmployeeID: "emp-a", PlatformID: "plat-y", CreatedAt: base},
	}

	t.Run("folds the pair history", func(t *testing.T) {
		got := ResolveBalance(history, "emp-a", "plat-x")
		assert.Equal(t, 50.0, got.InexactFloat64())
	})

	t.Run("manual adjustment replaces the computed balance", func(t *testing.T) {
		txs := append(history, model.Transaction{
			ID: "adj", Type: model.TransactionTypeDeposit, Amount: 200,
			EmployeeID: "emp-a", PlatformID: "plat-x",
			Description: "[AJUSTE DE SALDO]", CreatedAt: base.Add(2 * time.Hour),
		})
		got := ResolveBalance(txs, "emp-a", "plat-x")
		assert.Equal(t, 200.0, got.InexactFloat64())
	})

	t.Run("newest adjustment wins regardless of order", func(t *testing.T) {
		txs := []model.Transaction{
			{ID: "new", Amount: 80, EmployeeID: "e", PlatformID: "p", Description: "[AJUSTE DE SALDO]", CreatedAt: base.Add(time.Hour)},
			{ID: "old", Amount: 10, EmployeeID: "e", PlatformID: "p", Description: "[AJUSTE DE SALDO]", CreatedAt: base},
		}
		assert.Equal(t, 80.0, ResolveBalance(txs, "e", "p").InexactFloat64())

		txs[0], txs[1] = txs[1], txs[0]
		assert.Equal(t, 80.0, ResolveBalance(txs, "e", "p").InexactFloat64())
	})

	t.Run("adjustment timestamp falls back to update time then date", func(t *testing.T) {
		txs := []model.Transaction{
			{ID: "by-date", Amount: 1, EmployeeID: "e", PlatformID: "p", Description: "[AJUSTE DE SALDO]", Date: "2024-03-11"},
			{ID: "by-update", Amount: 2, EmployeeID: "e", PlatformID: "p", Description: "[AJUSTE DE SALDO]", UpdatedAt: base},
		}
		assert.Equal(t, 1.0, ResolveBalance(txs, "e", "p").InexactFloat64())
	})

	t.Run("arbitrage adds its amount", func(t *testing.T) {
		txs := []model.Transaction{
			{Type: model.TransactionTypeDeposit, Amount: 30, EmployeeID: "e", PlatformID: "p", Description: "[SUREBET] par"},
			{Type: model.TransactionTypeDeposit, Amount: 10, EmployeeID: "e", PlatformID: "p"},
		}
		assert.Equal(t, 20.0, ResolveBalance(txs, "e", "p").InexactFloat64())
	})

	// Free credits change profit but are left out of the balance fold.
	t.Run("free credit does not move the balance", func(t *testing.T) {
		txs := []model.Transaction{
			{Type: model.TransactionTypeWithdraw, Amount: 50, EmployeeID: "e", PlatformID: "p", Description: "[FREEBET] ganho"},
			{Type: model.TransactionTypeWithdraw, Amount: 5, EmployeeID: "e", PlatformID: "p"},
		}
		assert.Equal(t, 5.0, ResolveBalance(txs, "e", "p").InexactFloat64())
	})

	t.Run("empty history is zero", func(t *testing.T) {
		assert.True(t, ResolveBalance(nil, "missing", "missing").IsZero())
	})
}
