package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearpath-dev/clearpath/internal/report"
)

func newReportCommand(dataDir *string, verbose *bool) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly cash flow summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*dataDir, *verbose)
			if err != nil {
				return err
			}
			if month == "" {
				month = time.Now().Format("2006-01")
			}
			return runReport(e, month)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to report on (YYYY-MM, default current)")

	return cmd
}

func runReport(e *env, month string) error {
	txns, err := e.store.Transactions()
	if err != nil {
		return err
	}

	profile, err := e.store.Profile()
	if err != nil {
		return err
	}

	summary := report.Monthly(txns, month, profile.MonthlyIncome)

	fmt.Printf("Report for %s\n\n", month)
	fmt.Printf("  Income:   %12s\n", summary.Income.StringFixed(2))
	fmt.Printf("  Expenses: %12s\n", summary.Expenses.StringFixed(2))
	fmt.Printf("  Net:      %12s\n\n", summary.Net.StringFixed(2))

	totals := report.ExpensesByCategory(txns, month)
	if len(totals) > 0 {
		fmt.Println("Expenses by category:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, ct := range totals {
			fmt.Fprintf(w, "  %s\t%s\n", ct.Category, ct.Total.StringFixed(2))
		}
		w.Flush()
		fmt.Println()
	}

	burn, err := report.BurnRate(txns, month, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Burn rate: %s/day over %d of %d days, projecting %s by month end\n",
		burn.DailyRate.StringFixed(2), burn.DaysElapsed, burn.DaysInMonth,
		burn.ProjectedSpend.StringFixed(2))

	return nil
}
