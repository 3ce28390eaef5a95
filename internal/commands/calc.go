package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearpath-dev/clearpath/internal/planner"
)

func newCalcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "What-if calculators for big financial decisions",
	}

	cmd.AddCommand(newMortgageCommand(), newVehicleCommand(), newRetirementCommand())
	return cmd
}

func newMortgageCommand() *cobra.Command {
	p := planner.MortgageParams{}
	var amortize bool

	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Estimate a fixed-rate mortgage payment",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			res := planner.Mortgage(p)
			fmt.Printf("Loan amount:         %12.2f\n", res.LoanAmount)
			fmt.Printf("Principal & interest:%12.2f/mo\n", res.PrincipalInterest)
			fmt.Printf("Property tax:        %12.2f/mo\n", res.Taxes)
			fmt.Printf("Insurance:           %12.2f/mo\n", res.Insurance)
			fmt.Printf("Total payment:       %12.2f/mo\n", res.MonthlyPayment)
			fmt.Printf("Total interest:      %12.2f over %d years\n", res.TotalInterest, p.TermYears)

			if amortize {
				fmt.Println("\nYEAR  PRINCIPAL PAID  INTEREST PAID      BALANCE")
				for _, y := range planner.Amortize(res.LoanAmount, p.AnnualRate, p.TermYears) {
					fmt.Printf("%4d  %14.2f  %13.2f  %11.2f\n", y.Year, y.Principal, y.Interest, y.Balance)
				}
			}
		},
	}

	cmd.Flags().Float64Var(&p.HomePrice, "price", 400000, "home price")
	cmd.Flags().Float64Var(&p.DownPayment, "down", 80000, "down payment")
	cmd.Flags().Float64Var(&p.AnnualRate, "rate", 6.5, "annual interest rate (%)")
	cmd.Flags().IntVar(&p.TermYears, "term", 30, "term in years")
	cmd.Flags().Float64Var(&p.PropertyTax, "tax", 4800, "annual property tax")
	cmd.Flags().Float64Var(&p.Insurance, "insurance", 1500, "annual insurance")
	cmd.Flags().BoolVar(&amortize, "amortize", false, "print the year-by-year schedule")

	return cmd
}

func newVehicleCommand() *cobra.Command {
	p := planner.VehicleParams{}

	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Compare buying, financing, and leasing a vehicle",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			res := planner.Vehicle(p)
			fmt.Printf("Over %d years:\n", p.Years)
			fmt.Printf("  Cash:     %12.2f total  %10.2f/mo\n", res.Cash.Total, res.Cash.Monthly)
			fmt.Printf("  Finance:  %12.2f total  %10.2f/mo\n", res.Finance.Total, res.Finance.Monthly)
			fmt.Printf("  Lease:    %12.2f total  %10.2f/mo\n", res.Lease.Total, res.Lease.Monthly)
			fmt.Printf("\nCheapest: %s\n", res.Winner)
		},
	}

	cmd.Flags().Float64Var(&p.VehiclePrice, "price", 35000, "vehicle price")
	cmd.Flags().Float64Var(&p.DownPayment, "down", 5000, "down payment when financing")
	cmd.Flags().IntVar(&p.Years, "years", 6, "comparison horizon in years")
	cmd.Flags().Float64Var(&p.FinanceRate, "rate", 7, "finance rate (%)")
	cmd.Flags().IntVar(&p.FinanceTerm, "finance-term", 60, "finance term in months")
	cmd.Flags().Float64Var(&p.ResaleValue, "resale", 15000, "resale value at the end of the horizon")
	cmd.Flags().Float64Var(&p.LeasePayment, "lease-payment", 450, "monthly lease payment")
	cmd.Flags().IntVar(&p.LeaseTerm, "lease-term", 36, "lease term in months")
	cmd.Flags().Float64Var(&p.LeaseFees, "lease-fees", 2000, "fees per lease")

	return cmd
}

func newRetirementCommand() *cobra.Command {
	p := planner.RetirementParams{}
	var projection bool

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Project retirement savings and sustainable income",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			res := planner.Retirement(p)
			fmt.Printf("Projected savings at %d: %14.2f\n", p.RetireAge, res.ProjectedSavings)
			fmt.Printf("Sustainable income:      %14.2f/mo over %d years\n", res.MonthlyIncome, res.YearsInRetirement)
			fmt.Printf("Goal progress:           %13.1f%%\n", res.Progress)
			if res.OnTrack {
				fmt.Println("On track.")
			} else {
				fmt.Println("Not on track. Raise contributions or adjust the goal.")
			}

			if projection {
				fmt.Println("\n AGE       SAVINGS")
				for _, pt := range res.Projection {
					fmt.Printf("%4d  %12.0f\n", pt.Age, pt.Savings)
				}
			}
		},
	}

	cmd.Flags().IntVar(&p.CurrentAge, "age", 30, "current age")
	cmd.Flags().IntVar(&p.RetireAge, "retire-age", 65, "retirement age")
	cmd.Flags().IntVar(&p.LifeExpectancy, "life-expectancy", 90, "life expectancy")
	cmd.Flags().Float64Var(&p.CurrentSavings, "savings", 0, "current savings")
	cmd.Flags().Float64Var(&p.MonthlyContribution, "contribution", 500, "monthly contribution")
	cmd.Flags().Float64Var(&p.ReturnBefore, "return", 7, "annual return before retirement (%)")
	cmd.Flags().Float64Var(&p.ReturnDuring, "return-during", 4, "annual return during retirement (%)")
	cmd.Flags().Float64Var(&p.DesiredIncome, "income", 5000, "desired monthly income in retirement")
	cmd.Flags().Float64Var(&p.SocialSecurity, "social-security", 1800, "expected monthly social security")
	cmd.Flags().BoolVar(&projection, "projection", false, "print the per-age savings curve")

	return cmd
}
