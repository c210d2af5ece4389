package engine

import (
	"sort"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
)

// SummarizeDay folds the live transactions dated date into the summary that replaces
// them once the day is closed. Transactions on other dates and manual adjustments
// are ignored; adjustments stay in the live log because they set balances. Employee
// shares follow the same sign and bucket rules as the daily rollup.
func SummarizeDay(date string, txs []model.Transaction, employees []model.Employee, closedAt time.Time) model.ClosedDaySummary {
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	var day bucket
	shares := make(map[string]*bucket)
	count := 0
	for _, tx := range txs {
		if tx.Date != date || IsManualAdjustment(tx) {
			continue
		}
		count++
		c := Classify(tx)
		day.addTransaction(tx, c)

		if tx.EmployeeID == "" {
			continue
		}
		share, ok := shares[tx.EmployeeID]
		if !ok {
			share = &bucket{}
			shares[tx.EmployeeID] = share
		}
		share.addTransaction(tx, c)
	}

	totals := day.periodTotals()
	summary := model.ClosedDaySummary{
		Date:             date,
		Profit:           totals.Profit,
		TotalDeposits:    totals.Deposits,
		TotalWithdraws:   totals.Withdraws,
		TransactionCount: count,
		Employees:        make([]model.EmployeeDaySummary, 0, len(shares)),
		ClosedAt:         closedAt,
	}

	ids := make([]string, 0, len(shares))
	for id := range shares {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := shares[id].periodTotals()
		name := names[id]
		if name == "" {
			name = id
		}
		summary.Employees = append(summary.Employees, model.EmployeeDaySummary{
			EmployeeID:   id,
			EmployeeName: name,
			Profit:       t.Profit,
			Deposits:     t.Deposits,
			Withdraws:    t.Withdraws,
		})
	}
	return summary
}
