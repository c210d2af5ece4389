package engine

import (
	"sort"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/shopspring/decimal"
)

// ResolveBalance computes the balance an employee holds on a platform. The newest
// manual adjustment for the pair replaces the computed value outright; without one
// the balance is the fold of the pair's history. Free-credit transactions do not
// move the balance.
func ResolveBalance(txs []model.Transaction, employeeID, platformID string) decimal.Decimal {
	var adjustments []model.Transaction
	pair := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.EmployeeID != employeeID || tx.PlatformID != platformID {
			continue
		}
		if IsManualAdjustment(tx) {
			adjustments = append(adjustments, tx)
			continue
		}
		pair = append(pair, tx)
	}

	if len(adjustments) > 0 {
		sort.SliceStable(adjustments, func(i, j int) bool {
			ti, tj := bestTimestamp(adjustments[i]), bestTimestamp(adjustments[j])
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			return adjustments[i].ID > adjustments[j].ID
		})
		return amountOf(adjustments[0])
	}

	balance := decimal.Zero
	for _, tx := range pair {
		c := Classify(tx)
		switch {
		case c.ArbitragePair:
			balance = balance.Add(amountOf(tx))
		case c.FreeCredit:
			continue
		case tx.Type == model.TransactionTypeWithdraw:
			balance = balance.Add(amountOf(tx))
		default:
			balance = balance.Sub(amountOf(tx))
		}
	}
	return balance
}

// bestTimestamp prefers creation time, then update time, then the calendar date.
func bestTimestamp(tx model.Transaction) time.Time {
	if !tx.CreatedAt.IsZero() {
		return tx.CreatedAt
	}
	if !tx.UpdatedAt.IsZero() {
		return tx.UpdatedAt
	}
	if t, err := time.Parse(model.DateLayout, tx.Date); err == nil {
		return t
	}
	return time.Time{}
}
