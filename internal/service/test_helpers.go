package service

import (
	"context"
	"time"

	"github.com/castlemilk/bankroll/internal/auth"
	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/store"
)

var (
	testLocation = time.FixedZone("BRT", -3*60*60)
	testNow      = time.Date(2024, 5, 6, 18, 0, 0, 0, testLocation)
)

// testContextWithTenant creates a context with authenticated claims for a tenant
func testContextWithTenant(tenantID string) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UID:      "user-" + tenantID,
		Email:    "user-" + tenantID + "@test.local",
		TenantID: tenantID,
	})
}

func newTestEngine() *engine.Engine {
	return engine.New(testLocation, engine.WithClock(func() time.Time { return testNow }))
}

// newTestService wires a service over s with a fixed clock
func newTestService(s store.Store) *FinancialStateService {
	return NewFinancialStateService(s, NewRecomputer(s, newTestEngine()))
}
