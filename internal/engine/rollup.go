package engine

import (
	"sort"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/shopspring/decimal"
)

// bucket accumulates one rollup cell.
type bucket struct {
	profit    decimal.Decimal
	deposits  decimal.Decimal
	withdraws decimal.Decimal
}

// addTransaction folds a classified live transaction. Tagged transactions only move
// profit; untagged ones also count their amount as a deposit or withdrawal.
func (b *bucket) addTransaction(tx model.Transaction, c Classification) {
	b.profit = b.profit.Add(c.SignedProfit)
	if c.Tagged() {
		return
	}
	if tx.Type == model.TransactionTypeWithdraw {
		b.withdraws = b.withdraws.Add(amountOf(tx))
	} else {
		b.deposits = b.deposits.Add(amountOf(tx))
	}
}

func (b *bucket) addValues(profit, deposits, withdraws float64) {
	b.profit = b.profit.Add(toDecimal(profit))
	b.deposits = b.deposits.Add(toDecimal(deposits))
	b.withdraws = b.withdraws.Add(toDecimal(withdraws))
}

func (b *bucket) periodTotals() model.PeriodTotals {
	return model.PeriodTotals{
		Profit:    b.profit.InexactFloat64(),
		Deposits:  b.deposits.InexactFloat64(),
		Withdraws: b.withdraws.InexactFloat64(),
	}
}

// rollup is the daily and monthly view of a tenant's ledger.
type rollup struct {
	daily   map[string]*bucket
	monthly map[string]*bucket

	// summaryByDate holds one summary per closed date.
	summaryByDate map[string]model.ClosedDaySummary
	// live are the transactions whose date has not been closed, in input order.
	// Manual adjustments are included so they still feed balance resolution.
	live []model.Transaction
	// stragglers counts live-log transactions ignored because their day is closed.
	stragglers int
}

// dedupeClosedDays keeps one summary per date. When a date was closed twice the
// most recently closed summary wins so the result does not depend on read order.
func dedupeClosedDays(closed []model.ClosedDaySummary) map[string]model.ClosedDaySummary {
	sorted := make([]model.ClosedDaySummary, len(closed))
	copy(sorted, closed)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ClosedAt.Before(sorted[j].ClosedAt)
	})

	byDate := make(map[string]model.ClosedDaySummary, len(sorted))
	for _, s := range sorted {
		if s.Date == "" {
			continue
		}
		byDate[s.Date] = s
	}
	return byDate
}

// buildRollup merges closed-day summaries with the still-open part of the live log.
// A closed date is taken from its summary alone, even if transactions dated that
// day are still present.
func buildRollup(txs []model.Transaction, closed []model.ClosedDaySummary) *rollup {
	r := &rollup{
		daily:         make(map[string]*bucket),
		monthly:       make(map[string]*bucket),
		summaryByDate: dedupeClosedDays(closed),
	}

	for date, s := range r.summaryByDate {
		r.dayBucket(date).addValues(s.Profit, s.TotalDeposits, s.TotalWithdraws)
		r.monthBucket(date).addValues(s.Profit, s.TotalDeposits, s.TotalWithdraws)
	}

	for _, tx := range txs {
		adjustment := IsManualAdjustment(tx)
		if r.isClosed(tx.Date) {
			if !adjustment {
				r.stragglers++
			}
			continue
		}
		r.live = append(r.live, tx)
		// Adjustments override balances and never move profit or volume.
		if adjustment {
			continue
		}
		c := Classify(tx)
		r.dayBucket(tx.Date).addTransaction(tx, c)
		r.monthBucket(tx.Date).addTransaction(tx, c)
	}
	return r
}

func (r *rollup) isClosed(date string) bool {
	_, ok := r.summaryByDate[date]
	return ok
}

func (r *rollup) dayBucket(date string) *bucket {
	b, ok := r.daily[date]
	if !ok {
		b = &bucket{}
		r.daily[date] = b
	}
	return b
}

func (r *rollup) monthBucket(date string) *bucket {
	month := model.MonthOf(date)
	b, ok := r.monthly[month]
	if !ok {
		b = &bucket{}
		r.monthly[month] = b
	}
	return b
}
