package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/castlemilk/bankroll/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleState() *model.FinancialState {
	return &model.FinancialState{
		Totals: model.Totals{Deposits: 300, Withdraws: 100, Profit: -200, ProfitToday: -200},
		Daily: map[string]model.PeriodTotals{
			"2024-05-06": {Profit: -200, Deposits: 300, Withdraws: 100},
			"2024-05-01": {Profit: 10},
		},
		Monthly: map[string]model.PeriodTotals{"2024-05": {Profit: -190, Deposits: 300, Withdraws: 100}},
		Employees: map[string]model.EmployeeState{
			"diego": {Name: "Diego", Profit: -200, Deposits: 300, Withdraws: 100, Platforms: map[string]float64{"betano": -200}},
		},
		Platforms: map[string]model.PlatformState{"betano": {Name: "Betano", Profit: -200, Deposits: 300, Withdraws: 100}},
		UpdatedAt: time.Date(2024, 5, 6, 21, 0, 0, 0, time.UTC),
	}
}

func TestBuildStateXLSX(t *testing.T) {
	data, err := BuildStateXLSX("acme", sampleState())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"summary", "daily", "monthly", "employees", "balances", "platforms"}, f.GetSheetList())

	tenant, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant)

	profit, err := f.GetCellValue("summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, "-200", profit)

	rows, err := f.GetRows("daily")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-05-01", rows[1][0], "days are sorted")
	assert.Equal(t, "2024-05-06", rows[2][0])

	balances, err := f.GetRows("balances")
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, []string{"diego", "Diego", "betano", "Betano", "-200"}, balances[1])
}

func TestBuildStateXLSXRequiresState(t *testing.T) {
	_, err := BuildStateXLSX("acme", nil)
	assert.Error(t, err)
}

func TestParseGCSTarget(t *testing.T) {
	tests := []struct {
		target     string
		wantBucket string
		wantObject string
		wantOK     bool
	}{
		{"gs://exports/acme/state.xlsx", "exports", "acme/state.xlsx", true},
		{"gs://exports", "", "", false},
		{"gs:///state.xlsx", "", "", false},
		{"/tmp/state.xlsx", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			bucket, object, ok := ParseGCSTarget(tt.target)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}

func TestWriteLocal(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "state.xlsx")

	require.NoError(t, Write(context.Background(), target, []byte("xlsx")))
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), got)

	assert.Error(t, Write(context.Background(), "gs://bucket-only", []byte("x")))
}
