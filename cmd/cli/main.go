package main

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/castlemilk/bankroll/internal/cli"
	"github.com/castlemilk/bankroll/internal/config"
	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/logging"
	"github.com/castlemilk/bankroll/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, "console")
	ctx := logger.WithContext(context.Background())

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var storeImpl store.Store
	if cfg.UseMemoryStore {
		logger.Warn().Msg("using in-memory store, nothing will be persisted")
		storeImpl = store.NewMemoryStore()
	} else {
		client, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to create Firestore client: %w", err)
		}
		defer client.Close()
		storeImpl = store.NewFirestoreStore(client, loc)
	}

	env := &cli.Env{
		Store:        storeImpl,
		Engine:       engine.New(loc, engine.WithLogger(logger.With().Str("component", "Engine").Logger())),
		Out:          os.Stdout,
		ExportBucket: cfg.ExportBucket,
	}

	return cli.NewRootCmd(env).ExecuteContext(ctx)
}
