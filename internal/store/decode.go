package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
)

// Documents are written by several producers (web app, assistant, day closing), so
// fields are decoded leniently: a bad field is coerced to a safe default and
// reported, and only a record with no usable date is dropped.

// decodeTransaction coerces a raw transaction document. It returns the record, the
// coercions applied, and false when the record cannot be placed on any day.
func decodeTransaction(id string, data map[string]interface{}, loc *time.Location) (model.Transaction, []string, bool) {
	var warnings []string

	tx := model.Transaction{
		ID:          id,
		EmployeeID:  coerceString(data["employeeId"]),
		PlatformID:  coerceString(data["platformId"]),
		Description: coerceString(data["description"]),
		CreatedAt:   coerceTime(data["createdAt"]),
		UpdatedAt:   coerceTime(data["updatedAt"]),
	}

	rawType := coerceString(data["type"])
	txType, ok := model.ParseTransactionType(rawType)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("unknown type %q treated as deposit", rawType))
	}
	tx.Type = txType

	amount, ok := coerceFloat(data["amount"])
	if !ok {
		warnings = append(warnings, fmt.Sprintf("invalid amount %v treated as 0", data["amount"]))
	}
	tx.Amount = amount

	date, ok := coerceDate(data["date"], loc)
	if !ok {
		if tx.CreatedAt.IsZero() {
			return tx, append(warnings, "no usable date"), false
		}
		date = tx.CreatedAt.In(loc).Format(model.DateLayout)
		warnings = append(warnings, fmt.Sprintf("invalid date %v replaced by creation day", data["date"]))
	}
	tx.Date = date

	return tx, warnings, true
}

// decodeClosedDay coerces a raw closed-day document. Summaries are keyed by date, so
// the document ID is used when the date field is missing.
func decodeClosedDay(id string, data map[string]interface{}, loc *time.Location) (model.ClosedDaySummary, []string, bool) {
	var warnings []string

	date, ok := coerceDate(data["date"], loc)
	if !ok {
		if date, ok = coerceDate(id, loc); !ok {
			return model.ClosedDaySummary{}, []string{"no usable date"}, false
		}
	}

	summary := model.ClosedDaySummary{
		Date:     date,
		ClosedAt: coerceTime(data["closedAt"]),
	}
	if summary.ClosedAt.IsZero() {
		summary.ClosedAt = coerceTime(data["createdAt"])
	}

	profitField := data["profit"]
	if profitField == nil {
		profitField = data["margin"]
	}
	var valid bool
	if summary.Profit, valid = coerceFloat(profitField); !valid {
		warnings = append(warnings, "invalid profit treated as 0")
	}
	if summary.TotalDeposits, valid = coerceFloat(data["totalDeposits"]); !valid {
		warnings = append(warnings, "invalid totalDeposits treated as 0")
	}
	if summary.TotalWithdraws, valid = coerceFloat(data["totalWithdraws"]); !valid {
		warnings = append(warnings, "invalid totalWithdraws treated as 0")
	}
	count, _ := coerceFloat(data["transactionCount"])
	summary.TransactionCount = int(count)

	rawEmployees, _ := data["employees"].([]interface{})
	if rawEmployees == nil {
		rawEmployees, _ = data["employeeBreakdown"].([]interface{})
	}
	for _, raw := range rawEmployees {
		m, ok := raw.(map[string]interface{})
		if !ok {
			warnings = append(warnings, "skipped malformed employee breakdown entry")
			continue
		}
		share := model.EmployeeDaySummary{
			EmployeeID:   coerceString(m["employeeId"]),
			EmployeeName: coerceString(m["employeeName"]),
		}
		share.Profit, _ = coerceFloat(m["profit"])
		share.Deposits, _ = coerceFloat(m["deposits"])
		share.Withdraws, _ = coerceFloat(m["withdraws"])
		summary.Employees = append(summary.Employees, share)
	}

	return summary, warnings, true
}

func coerceString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// coerceFloat returns 0,false for missing, non-numeric or non-finite values.
func coerceFloat(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func coerceTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case int64:
		return time.UnixMilli(t).UTC()
	case float64:
		return time.UnixMilli(int64(t)).UTC()
	}
	return time.Time{}
}

// coerceDate normalizes a stored day to YYYY-MM-DD in the business timezone.
func coerceDate(v interface{}, loc *time.Location) (string, bool) {
	switch d := v.(type) {
	case string:
		s := strings.TrimSpace(d)
		if t, err := time.Parse(model.DateLayout, s); err == nil {
			return t.Format(model.DateLayout), true
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.In(loc).Format(model.DateLayout), true
		}
	case time.Time:
		if !d.IsZero() {
			return d.In(loc).Format(model.DateLayout), true
		}
	}
	return "", false
}
