package auth

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/castlemilk/bankroll/internal/store"
)

// RequireAuth extracts user claims from context or returns an unauthenticated error
func RequireAuth(ctx context.Context) (*UserClaims, error) {
	claims, ok := GetUserClaims(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("user not authenticated"))
	}
	return claims, nil
}

// RequireTenant returns the caller's verified tenant identity
func RequireTenant(ctx context.Context) (string, error) {
	claims, err := RequireAuth(ctx)
	if err != nil {
		return "", err
	}
	if claims.TenantID == "" {
		return "", connect.NewError(connect.CodePermissionDenied, fmt.Errorf("caller has no tenant"))
	}
	return claims.TenantID, nil
}

// NormalizePageSize returns a valid page size (default 100, max 1000)
func NormalizePageSize(pageSize int32) int32 {
	if pageSize <= 0 {
		return 100
	}
	if pageSize > 1000 {
		return 1000
	}
	return pageSize
}

// WrapStoreError wraps store errors with operation context and a matching Connect code
func WrapStoreError(operation string, err error) error {
	if err == nil {
		return nil
	}
	wrapped := fmt.Errorf("failed to %s: %w", operation, err)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, wrapped)
	case errors.Is(err, store.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, wrapped)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, wrapped)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, wrapped)
	}
	return connect.NewError(connect.CodeInternal, wrapped)
}
