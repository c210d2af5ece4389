// Package cli implements the bankroll operator commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/castlemilk/bankroll/internal/engine"
	"github.com/castlemilk/bankroll/internal/service"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/spf13/cobra"
)

// commandTimeout bounds a single command run.
const commandTimeout = 5 * time.Minute

// Env carries the dependencies shared by every command.
type Env struct {
	Store        store.Store
	Engine       *engine.Engine
	Out          io.Writer
	ExportBucket string
}

func (e *Env) recomputer() *service.Recomputer {
	return service.NewRecomputer(e.Store, e.Engine)
}

// NewRootCmd builds the command tree.
func NewRootCmd(env *Env) *cobra.Command {
	root := &cobra.Command{
		Use:           "bankroll",
		Short:         "Operate tenant financial states",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewRecomputeCmd(env),
		NewCloseDayCmd(env),
		NewExportCmd(env),
		NewSeedDemoCmd(env),
	)
	return root
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, commandTimeout)
}

func requireTenant(tenantID string) error {
	if tenantID == "" {
		return fmt.Errorf("--tenant is required")
	}
	return nil
}
