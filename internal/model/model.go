// Package model holds the tenant records read by the aggregation engine and the
// aggregate document it produces.
package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day key used for transactions, closed days and the
// daily rollup. It is fixed-width and zero-padded so keys sort lexically.
const DateLayout = "2006-01-02"

// MonthLayout is the year-month key used for the monthly rollup.
const MonthLayout = "2006-01"

// TransactionType is the direction of money between an employee and a platform.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// ParseTransactionType normalizes a stored type. Unknown values map to deposit and
// report ok=false so callers can log the coercion.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit", "deposito", "depósito":
		return TransactionTypeDeposit, true
	case "withdraw", "withdrawal", "saque":
		return TransactionTypeWithdraw, true
	default:
		return TransactionTypeDeposit, false
	}
}

// Employee is a person operating platform accounts on behalf of the tenant.
type Employee struct {
	ID   string `json:"id" firestore:"-"`
	Name string `json:"name" firestore:"name"`
}

// Platform is a betting platform the tenant's employees hold balances on.
type Platform struct {
	ID   string `json:"id" firestore:"-"`
	Name string `json:"name" firestore:"name"`
}

// Transaction is a single deposit or withdrawal in the live log.
type Transaction struct {
	ID          string          `json:"id" firestore:"-"`
	Type        TransactionType `json:"type" firestore:"type"`
	Amount      float64         `json:"amount" firestore:"amount"`
	EmployeeID  string          `json:"employeeId" firestore:"employeeId"`
	PlatformID  string          `json:"platformId,omitempty" firestore:"platformId,omitempty"`
	Date        string          `json:"date" firestore:"date"`
	Description string          `json:"description" firestore:"description"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// EmployeeDaySummary is one employee's share of a closed day.
type EmployeeDaySummary struct {
	EmployeeID   string  `json:"employeeId" firestore:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty" firestore:"employeeName,omitempty"`
	Profit       float64 `json:"profit" firestore:"profit"`
	Deposits     float64 `json:"deposits" firestore:"deposits"`
	Withdraws    float64 `json:"withdraws" firestore:"withdraws"`
}

// ClosedDaySummary is the immutable snapshot written when a day is closed. Its
// presence means live transactions dated Date have been consumed.
type ClosedDaySummary struct {
	Date             string               `json:"date" firestore:"date"`
	Profit           float64              `json:"profit" firestore:"profit"`
	TotalDeposits    float64              `json:"totalDeposits" firestore:"totalDeposits"`
	TotalWithdraws   float64              `json:"totalWithdraws" firestore:"totalWithdraws"`
	TransactionCount int                  `json:"transactionCount" firestore:"transactionCount"`
	Employees        []EmployeeDaySummary `json:"employees,omitempty" firestore:"employees,omitempty"`
	ClosedAt         time.Time            `json:"closedAt,omitempty" firestore:"closedAt,omitempty"`
}

// PeriodTotals is the rollup of one day or one month.
type PeriodTotals struct {
	Profit    float64 `json:"profit" firestore:"profit"`
	Deposits  float64 `json:"deposits" firestore:"deposits"`
	Withdraws float64 `json:"withdraws" firestore:"withdraws"`
}

// Totals are derived from the daily rollup plus the time windows.
type Totals struct {
	Deposits        float64 `json:"deposits" firestore:"deposits"`
	Withdraws       float64 `json:"withdraws" firestore:"withdraws"`
	Profit          float64 `json:"profit" firestore:"profit"`
	ProfitToday     float64 `json:"profitToday" firestore:"profitToday"`
	ProfitThisWeek  float64 `json:"profitThisWeek" firestore:"profitThisWeek"`
	ProfitThisMonth float64 `json:"profitThisMonth" firestore:"profitThisMonth"`
	ProfitThisYear  float64 `json:"profitThisYear" firestore:"profitThisYear"`
}

// EmployeeState is the per-employee breakdown. Platforms maps platform id to the
// resolved balance and only carries touched or non-zero entries.
type EmployeeState struct {
	Name      string             `json:"name" firestore:"name"`
	Profit    float64            `json:"profit" firestore:"profit"`
	Deposits  float64            `json:"deposits" firestore:"deposits"`
	Withdraws float64            `json:"withdraws" firestore:"withdraws"`
	Platforms map[string]float64 `json:"platforms" firestore:"platforms"`
}

// PlatformState is the per-platform breakdown of live transactions.
type PlatformState struct {
	Name      string  `json:"name" firestore:"name"`
	Profit    float64 `json:"profit" firestore:"profit"`
	Deposits  float64 `json:"deposits" firestore:"deposits"`
	Withdraws float64 `json:"withdraws" firestore:"withdraws"`
}

// FinancialState is the single aggregate document kept per tenant.
type FinancialState struct {
	Totals    Totals                   `json:"totals" firestore:"totals"`
	Daily     map[string]PeriodTotals  `json:"daily" firestore:"daily"`
	Monthly   map[string]PeriodTotals  `json:"monthly" firestore:"monthly"`
	Employees map[string]EmployeeState `json:"employees" firestore:"employees"`
	Platforms map[string]PlatformState `json:"platforms" firestore:"platforms"`
	UpdatedAt time.Time                `json:"updatedAt" firestore:"updatedAt"`
}

// MonthOf returns the YYYY-MM key of a YYYY-MM-DD date key.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}
