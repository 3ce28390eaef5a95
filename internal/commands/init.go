package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/clearpath-dev/clearpath/internal/config"
	"github.com/clearpath-dev/clearpath/internal/model"
	"github.com/clearpath-dev/clearpath/internal/store"
)

func newInitCommand(dataDir *string, verbose *bool) *cobra.Command {
	var name string
	var monthlyIncome float64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the clearpath data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(*dataDir, name, monthlyIncome)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().Float64Var(&monthlyIncome, "monthly-income", 0, "expected monthly income")

	return cmd
}

func runInit(dataDir, name string, monthlyIncome float64) error {
	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	cfg := config.Default(name)
	cfg.Profile.MonthlyIncome = monthlyIncome
	if err := config.Save(configPath(dataDir), cfg); err != nil {
		return err
	}

	profile := model.Profile{
		Name:          name,
		MonthlyIncome: decimal.NewFromFloat(monthlyIncome),
		SetupComplete: true,
	}
	if err := st.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Initialized clearpath data directory at %s\n", dataDir)
	fmt.Println("Drop bank statement exports into statements/ and run `clearpath import --all`.")
	return nil
}
