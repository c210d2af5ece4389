package cli

import (
	"errors"
	"fmt"

	"github.com/castlemilk/bankroll/internal/export"
	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/castlemilk/bankroll/internal/store"
	"github.com/spf13/cobra"
)

type exportCmd struct {
	env      *Env
	tenantID string
	out      string
}

// NewExportCmd writes a tenant's financial state as a spreadsheet.
func NewExportCmd(env *Env) *cobra.Command {
	ec := &exportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a tenant's financial state to XLSX",
		RunE:  ec.run,
	}
	cmd.Flags().StringVar(&ec.tenantID, "tenant", "", "Tenant ID")
	cmd.Flags().StringVar(&ec.out, "out", "", "Local path or gs://bucket/object (default gs://$EXPORT_BUCKET/<tenant>/financial-state-<date>.xlsx)")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func (ec *exportCmd) target() (string, error) {
	if ec.out != "" {
		return ec.out, nil
	}
	if ec.env.ExportBucket == "" {
		return "", fmt.Errorf("--out is required when no export bucket is configured")
	}
	day := ec.env.Engine.Now().In(ec.env.Engine.Location()).Format(model.DateLayout)
	return fmt.Sprintf("gs://%s/%s/financial-state-%s.xlsx", ec.env.ExportBucket, ec.tenantID, day), nil
}

func (ec *exportCmd) run(cmd *cobra.Command, _ []string) (err error) {
	if err := requireTenant(ec.tenantID); err != nil {
		return err
	}
	target, err := ec.target()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	defer func() {
		if err != nil {
			metrics.IncExport(metrics.ResultError)
			return
		}
		metrics.IncExport(metrics.ResultSuccess)
	}()

	state, err := ec.env.Store.GetFinancialState(ctx, ec.tenantID)
	if errors.Is(err, store.ErrNotFound) {
		state, err = ec.env.recomputer().Recompute(ctx, ec.tenantID, metrics.SourceCLI)
	}
	if err != nil {
		return fmt.Errorf("load financial state: %w", err)
	}

	data, err := export.BuildStateXLSX(ec.tenantID, state)
	if err != nil {
		return err
	}
	if err := export.Write(ctx, target, data); err != nil {
		return err
	}

	fmt.Fprintf(ec.env.Out, "exported %s to %s (%d bytes)\n", ec.tenantID, target, len(data))
	return nil
}
