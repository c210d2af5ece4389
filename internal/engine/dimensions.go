package engine

import (
	"github.com/castlemilk/bankroll/internal/model"
)

type pairKey struct {
	employeeID string
	platformID string
}

// aggregateEmployees builds the per-employee breakdown. Closed days contribute via
// their per-employee breakdown, open days via the employee's live transactions.
// Balances are resolved against the full history of each pair, so a closed-day
// straggler still moves a balance until it is deleted.
func aggregateEmployees(employees []model.Employee, platforms []model.Platform, txs []model.Transaction, r *rollup) map[string]model.EmployeeState {
	byPair := make(map[pairKey][]model.Transaction)
	for _, tx := range txs {
		if tx.PlatformID == "" {
			continue
		}
		k := pairKey{tx.EmployeeID, tx.PlatformID}
		byPair[k] = append(byPair[k], tx)
	}

	liveByEmployee := make(map[string][]model.Transaction)
	for _, tx := range r.live {
		liveByEmployee[tx.EmployeeID] = append(liveByEmployee[tx.EmployeeID], tx)
	}

	out := make(map[string]model.EmployeeState, len(employees))
	for _, emp := range employees {
		if emp.ID == "" {
			continue
		}
		var b bucket
		for _, s := range r.summaryByDate {
			for _, share := range s.Employees {
				if share.EmployeeID == emp.ID {
					b.addValues(share.Profit, share.Deposits, share.Withdraws)
				}
			}
		}

		balances := make(map[string]float64)
		for _, tx := range liveByEmployee[emp.ID] {
			if !IsManualAdjustment(tx) {
				b.addTransaction(tx, Classify(tx))
			}
			if tx.PlatformID == "" {
				continue
			}
			if _, done := balances[tx.PlatformID]; done {
				continue
			}
			k := pairKey{emp.ID, tx.PlatformID}
			balances[tx.PlatformID] = ResolveBalance(byPair[k], emp.ID, tx.PlatformID).InexactFloat64()
		}

		// Manual adjustments can exist for platforms with no open activity.
		for _, p := range platforms {
			if _, done := balances[p.ID]; done || p.ID == "" {
				continue
			}
			k := pairKey{emp.ID, p.ID}
			if balance := ResolveBalance(byPair[k], emp.ID, p.ID); !balance.IsZero() {
				balances[p.ID] = balance.InexactFloat64()
			}
		}

		totals := b.periodTotals()
		out[emp.ID] = model.EmployeeState{
			Name:      emp.Name,
			Profit:    totals.Profit,
			Deposits:  totals.Deposits,
			Withdraws: totals.Withdraws,
			Platforms: balances,
		}
	}
	return out
}

// aggregatePlatforms builds the per-platform breakdown from open days only. Closed
// summaries carry no platform split, so closed-day profit is absent here while it
// is present in the totals.
func aggregatePlatforms(platforms []model.Platform, r *rollup) map[string]model.PlatformState {
	liveByPlatform := make(map[string]*bucket, len(platforms))
	for _, p := range platforms {
		if p.ID != "" {
			liveByPlatform[p.ID] = &bucket{}
		}
	}
	for _, tx := range r.live {
		if IsManualAdjustment(tx) {
			continue
		}
		if b, ok := liveByPlatform[tx.PlatformID]; ok {
			b.addTransaction(tx, Classify(tx))
		}
	}

	out := make(map[string]model.PlatformState, len(platforms))
	for _, p := range platforms {
		b, ok := liveByPlatform[p.ID]
		if !ok {
			continue
		}
		totals := b.periodTotals()
		out[p.ID] = model.PlatformState{
			Name:      p.Name,
			Profit:    totals.Profit,
			Deposits:  totals.Deposits,
			Withdraws: totals.Withdraws,
		}
	}
	return out
}
