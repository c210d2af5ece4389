package cli

import (
	"fmt"

	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/spf13/cobra"
)

type recomputeCmd struct {
	env      *Env
	tenantID string
}

// NewRecomputeCmd rebuilds and persists a tenant's financial state.
func NewRecomputeCmd(env *Env) *cobra.Command {
	rc := &recomputeCmd{env: env}
	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recompute and persist a tenant's financial state",
		RunE:  rc.run,
	}
	cmd.Flags().StringVar(&rc.tenantID, "tenant", "", "Tenant ID")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func (rc *recomputeCmd) run(cmd *cobra.Command, _ []string) error {
	if err := requireTenant(rc.tenantID); err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	state, err := rc.env.recomputer().Recompute(ctx, rc.tenantID, metrics.SourceCLI)
	if err != nil {
		return fmt.Errorf("recompute %s: %w", rc.tenantID, err)
	}
	printState(rc.env.Out, rc.tenantID, state)
	return nil
}
