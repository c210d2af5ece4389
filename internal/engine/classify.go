package engine

import (
	"math"
	"strings"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/shopspring/decimal"
)

// Description markers written by the operators' tooling.
const (
	ArbitragePairMarker    = "[SUREBET]"
	FreeCreditMarker       = "[FREEBET]"
	ManualAdjustmentMarker = "[AJUSTE DE SALDO]"
)

// Classification is the profit view of a single transaction.
type Classification struct {
	ArbitragePair bool
	FreeCredit    bool
	SignedProfit  decimal.Decimal
}

// Tagged reports whether the transaction bypasses the deposit/withdraw sign rule.
// Tagged transactions only ever contribute to profit.
func (c Classification) Tagged() bool {
	return c.ArbitragePair || c.FreeCredit
}

// Classify labels a transaction and returns its signed contribution to profit.
func Classify(tx model.Transaction) Classification {
	amount := amountOf(tx)

	switch {
	case hasPrefixFold(tx.Description, ArbitragePairMarker):
		return Classification{ArbitragePair: true, SignedProfit: amount.Abs()}
	case hasPrefixFold(tx.Description, FreeCreditMarker):
		// Free-credit amounts are recorded already signed with the realized gain.
		return Classification{FreeCredit: true, SignedProfit: amount}
	}

	switch tx.Type {
	case model.TransactionTypeWithdraw:
		return Classification{SignedProfit: amount}
	case model.TransactionTypeDeposit:
		return Classification{SignedProfit: amount.Neg()}
	default:
		// Unknown types count as deposits so profit is never overstated.
		return Classification{SignedProfit: amount.Neg()}
	}
}

// IsManualAdjustment reports whether the transaction is an absolute balance override.
func IsManualAdjustment(tx model.Transaction) bool {
	return strings.Contains(strings.ToUpper(tx.Description), ManualAdjustmentMarker)
}

func hasPrefixFold(s, prefix string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// amountOf converts the stored amount, treating non-finite values as zero.
func amountOf(tx model.Transaction) decimal.Decimal {
	return toDecimal(tx.Amount)
}

func toDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
