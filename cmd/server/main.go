package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"connectrpc.com/connect"
	"github.com/castlemilk/bankroll/internal/auth"
	"github.com/castlemilk/bankroll/internal/config"
	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/events"
	"github.com/castlemilk/bankroll/internal/logging"
	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/service"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		bootLogger := logging.New("info", "json")
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid business timezone")
	}

	var storeImpl store.Store
	var firebaseAuth *auth.FirebaseAuth

	if cfg.UseMemoryStore {
		logger.Info().Msg("using in-memory store for local development")
		storeImpl = store.NewMemoryStore()

		// Local development always runs with mock authentication.
		logger.Info().Msg("using mock authentication for local development")
	} else {
		firestoreClient, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create Firestore client")
		}
		defer firestoreClient.Close()

		if cfg.SkipAuth {
			logger.Warn().Msg("SKIP_AUTH enabled, using mock authentication with Firestore (seeding/testing only)")
		} else {
			firebaseAuth, err = auth.NewFirebaseAuth(ctx, cfg.ProjectID)
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to initialize Firebase Auth")
			}
		}

		storeImpl = store.NewFirestoreStore(firestoreClient, loc)
	}

	eng := engine.New(loc, engine.WithLogger(logger.With().Str("component", "Engine").Logger()))
	recomputer := service.NewRecomputer(storeImpl, eng)
	trigger := service.NewTrigger(recomputer)
	stateService := service.NewFinancialStateService(storeImpl, recomputer)

	interceptors := []connect.Interceptor{
		logging.ConnectInterceptor(logger),
		// Debug impersonation runs before the real auth interceptor.
		auth.DebugAuthInterceptor(cfg.SkipAuth),
	}
	if firebaseAuth != nil {
		interceptors = append(interceptors, auth.AuthInterceptor(firebaseAuth))
	} else {
		interceptors = append(interceptors, auth.LocalDevInterceptor())
	}

	mux := newMux(cfg, stateService, trigger, nil, logger, interceptors...)

	if cfg.PubSubSubscription != "" && !cfg.UseMemoryStore {
		go runSubscriber(ctx, cfg, trigger, logger)
	}

	// NOTE: Frontend runs on port 1234, not 3000
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Content-Type",
			"Grpc-Timeout",
			"User-Agent",
			"X-Grpc-Web",
			"X-User-Agent",
			"X-Debug-Impersonate-User",
			"X-Debug-Tenant-ID",
		},
		ExposedHeaders: []string{
			"Grpc-Status",
			"Grpc-Message",
			"Grpc-Status-Details-Bin",
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(logging.Middleware(logger)(c.Handler(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	logger.Info().Str("port", cfg.Port).Str("timezone", loc.String()).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
	logger.Info().Msg("server stopped")
}

// runSubscriber consumes Firestore change events delivered through Pub/Sub.
func runSubscriber(ctx context.Context, cfg *config.Config, handler events.ChangeHandler, logger zerolog.Logger) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create Pub/Sub client, change events disabled")
		return
	}
	defer client.Close()

	sub := events.NewSubscriber(client, cfg.PubSubSubscription, handler, logger)
	if err := sub.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("change event subscriber stopped")
	}
}
