package auth

import (
	"context"

	"connectrpc.com/connect"
)

// LocalDevTenant is the tenant every unauthenticated local request acts on.
const LocalDevTenant = "local-dev-tenant"

// LocalDevInterceptor provides a mock user context for local development
func LocalDevInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if isPublicEndpoint(req.Spec().Procedure) {
				return next(ctx, req)
			}
			if _, ok := GetUserClaims(ctx); ok {
				return next(ctx, req)
			}

			ctx = withUserClaims(ctx, &UserClaims{
				UID:         "local-dev-user",
				Email:       "dev@localhost",
				DisplayName: "Local Dev User",
				TenantID:    LocalDevTenant,
				Verified:    true,
			})

			return next(ctx, req)
		}
	}
}
