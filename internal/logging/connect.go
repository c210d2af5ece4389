package logging

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

// ConnectInterceptor attaches a procedure-scoped logger to every unary call and logs
// the call's outcome.
func ConnectInterceptor(logger zerolog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			reqLogger := logger.With().Str("procedure", req.Spec().Procedure).Logger()
			ctx = reqLogger.WithContext(ctx)

			start := time.Now()
			res, err := next(ctx, req)

			event := reqLogger.Info()
			if err != nil {
				code := connect.CodeOf(err)
				if code == connect.CodeInternal || code == connect.CodeUnknown {
					event = reqLogger.Error()
				} else {
					event = reqLogger.Warn()
				}
				event = event.Err(err).Str("code", code.String())
			}
			event.Dur("duration", time.Since(start)).Msg("rpc")
			return res, err
		}
	}
}
