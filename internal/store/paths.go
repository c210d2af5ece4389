package store

import "errors"

// ErrAlreadyExists is returned when creating a document whose key is taken.
var ErrAlreadyExists = errors.New("already exists")

// Firestore layout. Every tenant owns a document under TenantsCollection and all of
// its records live in subcollections of that document:
//
//	tenants/{tenantId}/transactions/{transactionId}
//	tenants/{tenantId}/closedDays/{YYYY-MM-DD}
//	tenants/{tenantId}/financial-state/main
const (
	TenantsCollection        = "tenants"
	EmployeesCollection      = "employees"
	PlatformsCollection      = "platforms"
	TransactionsCollection   = "transactions"
	ClosedDaysCollection     = "closedDays"
	ArbitragePairsCollection = "arbitragePairs"
	FreeCreditsCollection    = "freeCredits"
	FinancialStateCollection = "financial-state"
	FinancialStateDocID      = "main"
)
