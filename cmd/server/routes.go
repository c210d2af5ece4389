package main

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/castlemilk/bankroll/internal/config"
	"github.com/castlemilk/bankroll/internal/events"
	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/service"
	"github.com/rs/zerolog"
)

// newMux mounts the RPC service, the change-event push endpoint, metrics and health.
// validate checks push tokens when cfg.PushAudience is set; nil uses Google's
// idtoken verifier.
func newMux(cfg *config.Config, svc *service.FinancialStateService, trigger events.ChangeHandler, validate events.TokenValidator, logger zerolog.Logger, interceptors ...connect.Interceptor) *http.ServeMux {
	path, handler := service.NewHandler(svc, connect.WithInterceptors(interceptors...))

	var push http.Handler = events.PushHandler(trigger)
	if cfg.PushAudience != "" {
		push = events.RequirePushToken(validate, cfg.PushAudience, push)
	} else {
		logger.Warn().Msg("PUSH_AUDIENCE not set, /events/firestore relies on ingress IAM for authentication")
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.Handle("/events/firestore", push)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}
