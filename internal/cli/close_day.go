package cli

import (
	"fmt"
	"time"

	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/castlemilk/bankroll/internal/service"
	"github.com/spf13/cobra"
)

type closeDayCmd struct {
	env      *Env
	tenantID string
	date     string
}

// NewCloseDayCmd closes a day for a tenant and refreshes its state.
func NewCloseDayCmd(env *Env) *cobra.Command {
	cc := &closeDayCmd{env: env}
	cmd := &cobra.Command{
		Use:   "close-day",
		Short: "Fold a day's transactions into a closed-day summary",
		RunE:  cc.run,
	}
	cmd.Flags().StringVar(&cc.tenantID, "tenant", "", "Tenant ID")
	cmd.Flags().StringVar(&cc.date, "date", "", "Day to close (YYYY-MM-DD, default yesterday in the business timezone)")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func (cc *closeDayCmd) run(cmd *cobra.Command, _ []string) error {
	if err := requireTenant(cc.tenantID); err != nil {
		return err
	}

	date := cc.date
	if date == "" {
		date = cc.env.Engine.Now().In(cc.env.Engine.Location()).AddDate(0, 0, -1).Format(model.DateLayout)
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	summary, err := service.CloseDay(ctx, cc.env.Store, cc.env.Engine, cc.tenantID, date)
	if err != nil {
		return fmt.Errorf("close day %s: %w", date, err)
	}
	printClosedDay(cc.env.Out, summary)

	if _, err := cc.env.recomputer().Recompute(ctx, cc.tenantID, metrics.SourceCLI); err != nil {
		return fmt.Errorf("recompute after closing %s: %w", date, err)
	}
	return nil
}
