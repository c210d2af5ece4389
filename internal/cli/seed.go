package cli

import (
	"fmt"
	"strings"

	"github.com/castlemilk/bankroll/internal/metrics"
	"github.com/castlemilk/bankroll/internal/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type seedDemoCmd struct {
	env      *Env
	tenantID string
}

// NewSeedDemoCmd loads a small demo dataset into a tenant.
func NewSeedDemoCmd(env *Env) *cobra.Command {
	sc := &seedDemoCmd{env: env}
	cmd := &cobra.Command{
		Use:   "seed-demo",
		Short: "Seed a tenant with demo employees, platforms and transactions",
		RunE:  sc.run,
	}
	cmd.Flags().StringVar(&sc.tenantID, "tenant", "", "Tenant ID")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

var demoEmployees = []string{"diego", "ana"}

var demoPlatforms = []string{"betano", "bet365"}

var demoTransactions = []struct {
	employeeID  string
	platformID  string
	txType      model.TransactionType
	amount      float64
	description string
	daysAgo     int
}{
	// Today
	{"diego", "betano", model.TransactionTypeDeposit, 200, "", 0},
	{"diego", "betano", model.TransactionTypeWithdraw, 50, "", 0},
	{"ana", "bet365", model.TransactionTypeDeposit, 100, "[SUREBET] Flamengo x Palmeiras", 0},
	{"ana", "bet365", model.TransactionTypeWithdraw, 130, "[SUREBET] Flamengo x Palmeiras", 0},

	// Earlier this week
	{"diego", "bet365", model.TransactionTypeDeposit, 300, "", 2},
	{"diego", "bet365", model.TransactionTypeWithdraw, 420, "", 2},
	{"ana", "betano", model.TransactionTypeWithdraw, 75, "[FREEBET] Bonus de boas-vindas", 3},

	// Last month
	{"diego", "betano", model.TransactionTypeDeposit, 500, "", 35},
	{"diego", "betano", model.TransactionTypeWithdraw, 610, "", 35},
	{"ana", "betano", model.TransactionTypeDeposit, 40, "[AJUSTE DE SALDO] Saldo inicial", 40},
}

func (sc *seedDemoCmd) run(cmd *cobra.Command, _ []string) error {
	if err := requireTenant(sc.tenantID); err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	caser := cases.Title(language.BrazilianPortuguese)
	for _, id := range demoEmployees {
		employee := &model.Employee{ID: id, Name: caser.String(id)}
		if err := sc.env.Store.CreateEmployee(ctx, sc.tenantID, employee); err != nil {
			return fmt.Errorf("seed employee %s: %w", id, err)
		}
	}
	for _, id := range demoPlatforms {
		platform := &model.Platform{ID: id, Name: caser.String(strings.ReplaceAll(id, "-", " "))}
		if err := sc.env.Store.CreatePlatform(ctx, sc.tenantID, platform); err != nil {
			return fmt.Errorf("seed platform %s: %w", id, err)
		}
	}

	now := sc.env.Engine.Now()
	today := now.In(sc.env.Engine.Location())
	for _, d := range demoTransactions {
		tx := &model.Transaction{
			ID:          uuid.New().String(),
			Type:        d.txType,
			Amount:      d.amount,
			EmployeeID:  d.employeeID,
			PlatformID:  d.platformID,
			Date:        today.AddDate(0, 0, -d.daysAgo).Format(model.DateLayout),
			Description: d.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := sc.env.Store.CreateTransaction(ctx, sc.tenantID, tx); err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}

	fmt.Fprintf(sc.env.Out, "seeded %d employees, %d platforms, %d transactions into %s\n",
		len(demoEmployees), len(demoPlatforms), len(demoTransactions), sc.tenantID)

	state, err := sc.env.recomputer().Recompute(ctx, sc.tenantID, metrics.SourceCLI)
	if err != nil {
		return fmt.Errorf("recompute %s: %w", sc.tenantID, err)
	}
	printState(sc.env.Out, sc.tenantID, state)
	return nil
}
