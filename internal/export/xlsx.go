// Package export renders a financial state as a spreadsheet and stores it locally or
// in Cloud Storage.
package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of the generated workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet   = "summary"
	dailySheet     = "daily"
	monthlySheet   = "monthly"
	employeesSheet = "employees"
	balancesSheet  = "balances"
	platformsSheet = "platforms"
)

// BuildStateXLSX renders the state of a tenant as a workbook with one sheet per view.
func BuildStateXLSX(tenantID string, state *model.FinancialState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("financial state is required")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, sheet := range []string{dailySheet, monthlySheet, employeesSheet, balancesSheet, platformsSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}

	summary := [][]interface{}{
		{"Financial State"},
		{},
		{"Tenant", tenantID},
		{"Updated", state.UpdatedAt.Format(time.RFC3339)},
		{"Deposits", state.Totals.Deposits},
		{"Withdraws", state.Totals.Withdraws},
		{"Profit", state.Totals.Profit},
		{"Profit today", state.Totals.ProfitToday},
		{"Profit this week", state.Totals.ProfitThisWeek},
		{"Profit this month", state.Totals.ProfitThisMonth},
		{"Profit this year", state.Totals.ProfitThisYear},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}

	if err := writeRows(f, dailySheet, periodRows("Day", state.Daily)); err != nil {
		return nil, err
	}
	if err := writeRows(f, monthlySheet, periodRows("Month", state.Monthly)); err != nil {
		return nil, err
	}

	employeeIDs := sortedKeys(state.Employees)
	employees := [][]interface{}{{"Employee ID", "Name", "Profit", "Deposits", "Withdraws"}}
	balances := [][]interface{}{{"Employee ID", "Name", "Platform ID", "Platform", "Balance"}}
	for _, id := range employeeIDs {
		e := state.Employees[id]
		employees = append(employees, []interface{}{id, e.Name, e.Profit, e.Deposits, e.Withdraws})
		for _, platformID := range sortedKeys(e.Platforms) {
			balances = append(balances, []interface{}{id, e.Name, platformID, state.Platforms[platformID].Name, e.Platforms[platformID]})
		}
	}
	if err := writeRows(f, employeesSheet, employees); err != nil {
		return nil, err
	}
	if err := writeRows(f, balancesSheet, balances); err != nil {
		return nil, err
	}

	platforms := [][]interface{}{{"Platform ID", "Name", "Profit", "Deposits", "Withdraws"}}
	for _, id := range sortedKeys(state.Platforms) {
		p := state.Platforms[id]
		platforms = append(platforms, []interface{}{id, p.Name, p.Profit, p.Deposits, p.Withdraws})
	}
	if err := writeRows(f, platformsSheet, platforms); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func periodRows(label string, periods map[string]model.PeriodTotals) [][]interface{} {
	rows := [][]interface{}{{label, "Profit", "Deposits", "Withdraws"}}
	for _, key := range sortedKeys(periods) {
		p := periods[key]
		rows = append(rows, []interface{}{key, p.Profit, p.Deposits, p.Withdraws})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
