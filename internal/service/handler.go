package service

import (
	"net/http"

	"connectrpc.com/connect"
)

// ServiceName is the fully-qualified name of the Connect service.
const ServiceName = "bankroll.v1.FinancialStateService"

// Procedure paths.
const (
	GetFinancialStateProcedure         = "/" + ServiceName + "/GetFinancialState"
	RecalculateFinancialStateProcedure = "/" + ServiceName + "/RecalculateFinancialState"
	CreateTransactionProcedure         = "/" + ServiceName + "/CreateTransaction"
	DeleteTransactionProcedure         = "/" + ServiceName + "/DeleteTransaction"
	ListTransactionsProcedure          = "/" + ServiceName + "/ListTransactions"
	AdjustBalanceProcedure             = "/" + ServiceName + "/AdjustBalance"
	CloseDayProcedure                  = "/" + ServiceName + "/CloseDay"
	CreateEmployeeProcedure            = "/" + ServiceName + "/CreateEmployee"
	CreatePlatformProcedure            = "/" + ServiceName + "/CreatePlatform"
)

// NewHandler builds an HTTP handler serving every procedure of the service. It
// returns the path to mount the handler on.
func NewHandler(svc *FinancialStateService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec())}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetFinancialStateProcedure, connect.NewUnaryHandler(GetFinancialStateProcedure, svc.GetFinancialState, opts...))
	mux.Handle(RecalculateFinancialStateProcedure, connect.NewUnaryHandler(RecalculateFinancialStateProcedure, svc.RecalculateFinancialState, opts...))
	mux.Handle(CreateTransactionProcedure, connect.NewUnaryHandler(CreateTransactionProcedure, svc.CreateTransaction, opts...))
	mux.Handle(DeleteTransactionProcedure, connect.NewUnaryHandler(DeleteTransactionProcedure, svc.DeleteTransaction, opts...))
	mux.Handle(ListTransactionsProcedure, connect.NewUnaryHandler(ListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(AdjustBalanceProcedure, connect.NewUnaryHandler(AdjustBalanceProcedure, svc.AdjustBalance, opts...))
	mux.Handle(CloseDayProcedure, connect.NewUnaryHandler(CloseDayProcedure, svc.CloseDay, opts...))
	mux.Handle(CreateEmployeeProcedure, connect.NewUnaryHandler(CreateEmployeeProcedure, svc.CreateEmployee, opts...))
	mux.Handle(CreatePlatformProcedure, connect.NewUnaryHandler(CreatePlatformProcedure, svc.CreatePlatform, opts...))

	return "/" + ServiceName + "/", mux
}
