package engine

import (
	"testing"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDay(t *testing.T) {
	closedAt := time.Date(2024, 5, 7, 2, 0, 0, 0, time.UTC)
	ds := diegoBetano()
	ds.Employees = append(ds.Employees, model.Employee{ID: "ana", Name: "Ana"})
	ds.Transactions = append(ds.Transactions,
		model.Transaction{ID: "tx-3", Type: model.TransactionTypeDeposit, Amount: 50, EmployeeID: "ana", Date: "2024-05-06", Description: "[SUREBET] jogo"},
		model.Transaction{ID: "tx-4", Type: model.TransactionTypeWithdraw, Amount: 999, EmployeeID: "ana", Date: "2024-05-07"},
	)

	summary := SummarizeDay("2024-05-06", ds.Transactions, ds.Employees, closedAt)

	assert.Equal(t, "2024-05-06", summary.Date)
	assert.Equal(t, -150.0, summary.Profit)
	assert.Equal(t, 300.0, summary.TotalDeposits)
	assert.Equal(t, 100.0, summary.TotalWithdraws)
	assert.Equal(t, 3, summary.TransactionCount)
	assert.Equal(t, closedAt, summary.ClosedAt)
	require.Len(t, summary.Employees, 2)
	assert.Equal(t, model.EmployeeDaySummary{EmployeeID: "ana", EmployeeName: "Ana", Profit: 50}, summary.Employees[0])
	assert.Equal(t, model.EmployeeDaySummary{EmployeeID: "diego", EmployeeName: "Diego", Profit: -200, Deposits: 300, Withdraws: 100}, summary.Employees[1])
}

func TestSummarizeDaySkipsManualAdjustments(t *testing.T) {
	ds := diegoBetano()
	ds.Transactions = append(ds.Transactions, model.Transaction{
		ID: "adj", Type: model.TransactionTypeDeposit, Amount: 1000, EmployeeID: "diego", PlatformID: "betano",
		Date: "2024-05-06", Description: "[AJUSTE DE SALDO]",
	})

	summary := SummarizeDay("2024-05-06", ds.Transactions, ds.Employees, time.Time{})

	assert.Equal(t, -200.0, summary.Profit)
	assert.Equal(t, 300.0, summary.TotalDeposits)
	assert.Equal(t, 2, summary.TransactionCount)
	require.Len(t, summary.Employees, 1)
	assert.Equal(t, 300.0, summary.Employees[0].Deposits)
}

func TestSummarizeDayEmpty(t *testing.T) {
	summary := SummarizeDay("2024-05-06", nil, nil, time.Time{})

	assert.Equal(t, model.ClosedDaySummary{Date: "2024-05-06", Employees: []model.EmployeeDaySummary{}}, summary)
}

// Closing a day must not change the computed state: the summary replaces the
// transactions it was built from.
func TestSummarizeDayPreservesState(t *testing.T) {
	ds := diegoBetano()
	before := newTestEngine().Compute(ds)

	summary := SummarizeDay("2024-05-06", ds.Transactions, ds.Employees, time.Now())
	after := newTestEngine().Compute(Dataset{
		Employees:  ds.Employees,
		Platforms:  ds.Platforms,
		ClosedDays: []model.ClosedDaySummary{summary},
	})

	assert.Equal(t, before.Totals, after.Totals)
	assert.Equal(t, before.Daily, after.Daily)
	assert.Equal(t, before.Monthly, after.Monthly)
	assert.Equal(t, before.Employees["diego"].Profit, after.Employees["diego"].Profit)
	assert.Equal(t, before.Employees["diego"].Deposits, after.Employees["diego"].Deposits)
}
