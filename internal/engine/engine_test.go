package engine

import (
	"testing"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func diegoBetano() Dataset {
	created := time.Date(2024, 5, 6, 13, 0, 0, 0, time.UTC)
	return Dataset{
		Employees: []model.Employee{{ID: "diego", Name: "Diego"}},
		Platforms: []model.Platform{{ID: "betano", Name: "Betano"}},
		Transactions: []model.Transaction{
			{ID: "tx-1", Type: model.TransactionTypeDeposit, Amount: 300, EmployeeID: "diego", PlatformID: "betano", Date: "2024-05-06", CreatedAt: created},
			{ID: "tx-2", Type: model.TransactionTypeWithdraw, Amount: 100, EmployeeID: "diego", PlatformID: "betano", Date: "2024-05-06", CreatedAt: created.Add(time.Minute)},
		},
	}
}

func newTestEngine() *Engine {
	return New(saoPaulo, WithClock(fixedClock(time.Date(2024, 5, 6, 18, 0, 0, 0, saoPaulo))))
}

func TestComputeOpenDayScenario(t *testing.T) {
	state := newTestEngine().Compute(diegoBetano())

	assert.Equal(t, model.PlatformState{Name: "Betano", Profit: -200, Deposits: 300, Withdraws: 100}, state.Platforms["betano"])

	diego := state.Employees["diego"]
	assert.Equal(t, "Diego", diego.Name)
	assert.Equal(t, -200.0, diego.Profit)
	assert.Equal(t, 300.0, diego.Deposits)
	assert.Equal(t, 100.0, diego.Withdraws)
	assert.Equal(t, map[string]float64{"betano": -200}, diego.Platforms)

	assert.Equal(t, -200.0, state.Totals.Profit)
	assert.Equal(t, -200.0, state.Totals.ProfitToday)
	assert.Equal(t, model.PeriodTotals{Profit: -200, Deposits: 300, Withdraws: 100}, state.Daily["2024-05-06"])
	assert.Equal(t, model.PeriodTotals{Profit: -200, Deposits: 300, Withdraws: 100}, state.Monthly["2024-05"])
}

func TestComputeClosedDayWithLaggingDelete(t *testing.T) {
	ds := diegoBetano()
	ds.ClosedDays = []model.ClosedDaySummary{{
		Date:             "2024-05-06",
		Profit:           -200,
		TotalDeposits:    300,
		TotalWithdraws:   100,
		TransactionCount: 2,
		Employees: []model.EmployeeDaySummary{
			{EmployeeID: "diego", EmployeeName: "Diego", Profit: -200, Deposits: 300, Withdraws: 100},
		},
	}}

	state := newTestEngine().Compute(ds)

	assert.Equal(t, model.PeriodTotals{Profit: -200, Deposits: 300, Withdraws: 100}, state.Daily["2024-05-06"])
	assert.Equal(t, -200.0, state.Totals.Profit)
	assert.Equal(t, 300.0, state.Totals.Deposits)
	assert.Equal(t, -200.0, state.Employees["diego"].Profit)

	// Closed days carry no platform split.
	assert.Equal(t, model.PlatformState{Name: "Betano"}, state.Platforms["betano"])
}

func TestComputeNoDoubleCounting(t *testing.T) {
	ds := Dataset{
		ClosedDays: []model.ClosedDaySummary{{Date: "2024-05-05", Profit: 50, TotalDeposits: 10, TotalWithdraws: 60}},
		Transactions: []model.Transaction{
			{ID: "open", Type: model.TransactionTypeWithdraw, Amount: 5, Date: "2024-05-06"},
		},
	}
	before := newTestEngine().Compute(ds)

	ds.Transactions = append(ds.Transactions,
		model.Transaction{ID: "late-1", Type: model.TransactionTypeWithdraw, Amount: 1000, Date: "2024-05-05"},
		model.Transaction{ID: "late-2", Type: model.TransactionTypeDeposit, Amount: 70, Date: "2024-05-05", Description: "[SUREBET] x"},
		model.Transaction{ID: "late-3", Type: model.TransactionTypeDeposit, Amount: 30, Date: "2024-05-05", Description: "[FREEBET] y"},
	)
	after := newTestEngine().Compute(ds)

	assert.Equal(t, before.Daily["2024-05-05"], after.Daily["2024-05-05"])
	assert.Equal(t, before.Totals, after.Totals)
	assert.Equal(t, 55.0, after.Totals.Profit)
}

func TestComputeTotalsDerivedFromDaily(t *testing.T) {
	ds := Dataset{
		ClosedDays: []model.ClosedDaySummary{
			{Date: "2024-04-30", Profit: 12.5, TotalDeposits: 100, TotalWithdraws: 112.5},
			{Date: "2024-05-01", Profit: -3.25, TotalDeposits: 3.25},
		},
		Transactions: []model.Transaction{
			{Type: model.TransactionTypeDeposit, Amount: 0.1, Date: "2024-05-02"},
			{Type: model.TransactionTypeDeposit, Amount: 0.2, Date: "2024-05-02"},
			{Type: model.TransactionTypeWithdraw, Amount: 40, Date: "2024-05-03", Description: "[SUREBET]"},
			{Type: "garbage", Amount: 7, Date: "2024-05-03"},
		},
	}
	state := newTestEngine().Compute(ds)

	var deposits, withdraws, profit float64
	for _, d := range state.Daily {
		deposits += d.Deposits
		withdraws += d.Withdraws
		profit += d.Profit
	}
	assert.InDelta(t, deposits, state.Totals.Deposits, 1e-9)
	assert.InDelta(t, withdraws, state.Totals.Withdraws, 1e-9)
	assert.InDelta(t, profit, state.Totals.Profit, 1e-9)

	// Decimal accumulation keeps cents exact.
	assert.Equal(t, 0.3, state.Daily["2024-05-02"].Deposits)
	assert.Equal(t, model.PeriodTotals{Profit: 33, Deposits: 7}, state.Daily["2024-05-03"])
	assert.Equal(t, model.PeriodTotals{Profit: 12.5, Deposits: 100, Withdraws: 112.5}, state.Monthly["2024-04"])
}

func TestComputeSignConvention(t *testing.T) {
	tests := []struct {
		name string
		tx   model.Transaction
		want model.PeriodTotals
	}{
		{"deposit", model.Transaction{Type: model.TransactionTypeDeposit, Amount: 100}, model.PeriodTotals{Profit: -100, Deposits: 100}},
		{"withdraw", model.Transaction{Type: model.TransactionTypeWithdraw, Amount: 100}, model.PeriodTotals{Profit: 100, Withdraws: 100}},
		{"arbitrage deposit", model.Transaction{Type: model.TransactionTypeDeposit, Amount: 100, Description: "[SUREBET] a/b"}, model.PeriodTotals{Profit: 100}},
		{"free credit gain", model.Transaction{Type: model.TransactionTypeWithdraw, Amount: 50, Description: "[FREEBET] bonus"}, model.PeriodTotals{Profit: 50}},
		{"free credit loss", model.Transaction{Type: model.TransactionTypeDeposit, Amount: -30, Description: "[freebet] bonus"}, model.PeriodTotals{Profit: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.tx.Date = "2024-05-06"
			state := newTestEngine().Compute(Dataset{Transactions: []model.Transaction{tt.tx}})
			assert.Equal(t, tt.want, state.Daily["2024-05-06"])
		})
	}
}

func TestComputeOpenDayFreeCredits(t *testing.T) {
	ds := diegoBetano()
	ds.Transactions = append(ds.Transactions,
		model.Transaction{ID: "fb-1", Type: model.TransactionTypeWithdraw, Amount: 40, EmployeeID: "diego", PlatformID: "betano", Date: "2024-05-06", Description: "[FREEBET] boas-vindas"},
		model.Transaction{ID: "fb-2", Type: model.TransactionTypeDeposit, Amount: -15, EmployeeID: "diego", PlatformID: "betano", Date: "2024-05-06", Description: "[FREEBET] perdida"},
	)
	state := newTestEngine().Compute(ds)

	want := model.PeriodTotals{Profit: -175, Deposits: 300, Withdraws: 100}
	assert.Equal(t, want, state.Daily["2024-05-06"])
	assert.Equal(t, want, state.Monthly["2024-05"])
	assert.Equal(t, model.PlatformState{Name: "Betano", Profit: -175, Deposits: 300, Withdraws: 100}, state.Platforms["betano"])

	diego := state.Employees["diego"]
	assert.Equal(t, -175.0, diego.Profit)
	assert.Equal(t, 300.0, diego.Deposits)
	assert.Equal(t, 100.0, diego.Withdraws)
	// Free credits do not move the balance.
	assert.Equal(t, -200.0, diego.Platforms["betano"])
}

func TestComputeManualAdjustmentOnlySetsBalance(t *testing.T) {
	base := newTestEngine().Compute(diegoBetano())

	ds := diegoBetano()
	ds.Transactions = append(ds.Transactions, model.Transaction{
		ID: "adj-1", Type: model.TransactionTypeDeposit, Amount: 1000, EmployeeID: "diego", PlatformID: "betano",
		Date: "2024-05-06", Description: "[AJUSTE DE SALDO]", CreatedAt: time.Date(2024, 5, 6, 20, 0, 0, 0, time.UTC),
	})
	state := newTestEngine().Compute(ds)

	assert.Equal(t, base.Totals, state.Totals)
	assert.Equal(t, base.Daily, state.Daily)
	assert.Equal(t, base.Monthly, state.Monthly)
	assert.Equal(t, base.Platforms, state.Platforms)

	diego := state.Employees["diego"]
	assert.Equal(t, -200.0, diego.Profit)
	assert.Equal(t, 300.0, diego.Deposits)
	assert.Equal(t, map[string]float64{"betano": 1000}, diego.Platforms)
}

func TestComputeAdjustmentOnlyDayHasNoBucket(t *testing.T) {
	ds := Dataset{
		Employees: []model.Employee{{ID: "ana", Name: "Ana"}},
		Platforms: []model.Platform{{ID: "p1", Name: "P1"}},
		Transactions: []model.Transaction{
			{ID: "adj", Amount: 40, EmployeeID: "ana", PlatformID: "p1", Date: "2024-05-03", Description: "saldo [ajuste de saldo]"},
		},
	}
	state := newTestEngine().Compute(ds)

	assert.Empty(t, state.Daily)
	assert.Empty(t, state.Monthly)
	assert.Equal(t, model.Totals{}, state.Totals)
	assert.Equal(t, map[string]float64{"p1": 40}, state.Employees["ana"].Platforms)
}

func TestComputeDeterministic(t *testing.T) {
	ds := diegoBetano()
	ds.Platforms = append(ds.Platforms, model.Platform{ID: "bet365", Name: "Bet365"})
	ds.Transactions = append(ds.Transactions,
		model.Transaction{ID: "adj-1", Amount: 75, EmployeeID: "diego", PlatformID: "bet365", Date: "2024-05-01", Description: "[AJUSTE DE SALDO]"},
		model.Transaction{ID: "adj-2", Amount: 80, EmployeeID: "diego", PlatformID: "bet365", Date: "2024-05-01", Description: "[AJUSTE DE SALDO]"},
	)
	ds.ClosedDays = []model.ClosedDaySummary{
		{Date: "2024-05-02", Profit: 1, ClosedAt: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		{Date: "2024-05-02", Profit: 2, ClosedAt: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)},
	}

	first := New(saoPaulo, WithClock(fixedClock(time.Date(2024, 5, 6, 18, 0, 0, 0, saoPaulo)))).Compute(ds)

	// Reverse every input slice; the result must not change apart from UpdatedAt.
	reversed := Dataset{Employees: ds.Employees, Platforms: ds.Platforms}
	for i := len(ds.Transactions) - 1; i >= 0; i-- {
		reversed.Transactions = append(reversed.Transactions, ds.Transactions[i])
	}
	for i := len(ds.ClosedDays) - 1; i >= 0; i-- {
		reversed.ClosedDays = append(reversed.ClosedDays, ds.ClosedDays[i])
	}
	second := New(saoPaulo, WithClock(fixedClock(time.Date(2024, 5, 6, 18, 30, 0, 0, saoPaulo)))).Compute(reversed)

	require.NotEqual(t, first.UpdatedAt, second.UpdatedAt)
	second.UpdatedAt = first.UpdatedAt
	assert.Equal(t, first, second)

	// The later of two closings of the same date wins.
	assert.Equal(t, 2.0, first.Daily["2024-05-02"].Profit)
	// adj-2 sorts after adj-1 on an equal timestamp.
	assert.Equal(t, 80.0, first.Employees["diego"].Platforms["bet365"])
}

func TestComputeEmployeeBalances(t *testing.T) {
	ds := Dataset{
		Employees: []model.Employee{{ID: "ana", Name: "Ana"}, {ID: "idle", Name: "Idle"}},
		Platforms: []model.Platform{{ID: "p1", Name: "P1"}, {ID: "p2", Name: "P2"}, {ID: "p3", Name: "P3"}},
		ClosedDays: []model.ClosedDaySummary{{
			Date:      "2024-05-01",
			Profit:    10,
			Employees: []model.EmployeeDaySummary{{EmployeeID: "ana", Profit: 10, Withdraws: 10}},
		}},
		Transactions: []model.Transaction{
			// p1 is touched by an open-day transaction and nets to zero.
			{Type: model.TransactionTypeDeposit, Amount: 20, EmployeeID: "ana", PlatformID: "p1", Date: "2024-05-06"},
			{Type: model.TransactionTypeWithdraw, Amount: 20, EmployeeID: "ana", PlatformID: "p1", Date: "2024-05-06"},
			// p2 only has a manual adjustment on a closed day.
			{Amount: 42, EmployeeID: "ana", PlatformID: "p2", Date: "2024-05-01", Description: "[AJUSTE DE SALDO]"},
			// Unknown employee and platform are tolerated.
			{Type: model.TransactionTypeWithdraw, Amount: 9, EmployeeID: "ghost", PlatformID: "nowhere", Date: "2024-05-06"},
		},
	}
	state := newTestEngine().Compute(ds)

	ana := state.Employees["ana"]
	assert.Equal(t, 10.0, ana.Profit)
	assert.Equal(t, 20.0, ana.Deposits)
	assert.Equal(t, 30.0, ana.Withdraws)
	assert.Equal(t, map[string]float64{"p1": 0, "p2": 42}, ana.Platforms)

	idle := state.Employees["idle"]
	assert.Empty(t, idle.Platforms)
	assert.NotNil(t, idle.Platforms)

	assert.NotContains(t, state.Employees, "ghost")
	assert.NotContains(t, state.Platforms, "nowhere")
	assert.Equal(t, model.PlatformState{Name: "P3"}, state.Platforms["p3"])
	assert.Equal(t, 19.0, state.Totals.Profit)
}

func TestComputeEmptyDataset(t *testing.T) {
	state := newTestEngine().Compute(Dataset{})

	assert.Empty(t, state.Daily)
	assert.Empty(t, state.Monthly)
	assert.Empty(t, state.Employees)
	assert.Empty(t, state.Platforms)
	assert.Equal(t, model.Totals{}, state.Totals)
}
