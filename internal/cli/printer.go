package cli

import (
	"io"

	"github.com/castlemilk/bankroll/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printState writes a short human summary of a state with Brazilian number formatting.
func printState(w io.Writer, tenantID string, state *model.FinancialState) {
	p := message.NewPrinter(language.BrazilianPortuguese)

	p.Fprintf(w, "tenant %s (updated %s)\n", tenantID, state.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	p.Fprintf(w, "  profit      %12.2f\n", state.Totals.Profit)
	p.Fprintf(w, "  deposits    %12.2f\n", state.Totals.Deposits)
	p.Fprintf(w, "  withdraws   %12.2f\n", state.Totals.Withdraws)
	p.Fprintf(w, "  today       %12.2f\n", state.Totals.ProfitToday)
	p.Fprintf(w, "  this week   %12.2f\n", state.Totals.ProfitThisWeek)
	p.Fprintf(w, "  this month  %12.2f\n", state.Totals.ProfitThisMonth)
	p.Fprintf(w, "  this year   %12.2f\n", state.Totals.ProfitThisYear)
	p.Fprintf(w, "  %d days, %d employees, %d platforms\n", len(state.Daily), len(state.Employees), len(state.Platforms))
}

func printClosedDay(w io.Writer, summary *model.ClosedDaySummary) {
	p := message.NewPrinter(language.BrazilianPortuguese)

	p.Fprintf(w, "closed %s: profit %.2f, deposits %.2f, withdraws %.2f, %d transactions\n",
		summary.Date, summary.Profit, summary.TotalDeposits, summary.TotalWithdraws, summary.TransactionCount)
	for _, e := range summary.Employees {
		p.Fprintf(w, "  %-20s %12.2f\n", e.EmployeeName, e.Profit)
	}
}
