package service

import "github.com/castlemilk/bankroll/internal/model"

// Request and response messages of bankroll.v1.FinancialStateService. They travel
// as JSON over the Connect protocol.

type GetFinancialStateRequest struct{}

type GetFinancialStateResponse struct {
	State *model.FinancialState `json:"state"`
}

type RecalculateFinancialStateRequest struct{}

type RecalculateFinancialStateResponse struct {
	State *model.FinancialState `json:"state"`
}

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	EmployeeID  string  `json:"employeeId"`
	PlatformID  string  `json:"platformId,omitempty"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction *model.Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transactionId"`
}

type DeleteTransactionResponse struct{}

type ListTransactionsRequest struct {
	Date      string `json:"date,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions  []model.Transaction `json:"transactions"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

// AdjustBalanceRequest sets the absolute balance an employee holds on a platform.
type AdjustBalanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	PlatformID string  `json:"platformId"`
	Balance    float64 `json:"balance"`
	Date       string  `json:"date,omitempty"`
	Note       string  `json:"note,omitempty"`
}

type AdjustBalanceResponse struct {
	Transaction *model.Transaction `json:"transaction"`
}

type CloseDayRequest struct {
	Date string `json:"date"`
}

type CloseDayResponse struct {
	Summary *model.ClosedDaySummary `json:"summary"`
}

type CreateEmployeeRequest struct {
	Name string `json:"name"`
}

type CreateEmployeeResponse struct {
	Employee *model.Employee `json:"employee"`
}

type CreatePlatformRequest struct {
	Name string `json:"name"`
}

type CreatePlatformResponse struct {
	Platform *model.Platform `json:"platform"`
}
