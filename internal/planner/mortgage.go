// Package planner holds the dashboard's what-if calculators. All of it is
// projection math over user-supplied assumptions, so values are float64
// estimates, not ledger amounts.
package planner

import "math"

// MortgageParams are the inputs to a mortgage estimate. Rate is an annual
// percentage (6.5 means 6.5%); tax and insurance are annual totals.
type MortgageParams struct {
	HomePrice   float64
	DownPayment float64
	AnnualRate  float64
	TermYears   int
	PropertyTax float64
	Insurance   float64
}

// MortgageResult is the monthly cost breakdown for a mortgage.
type MortgageResult struct {
	LoanAmount        float64
	PrincipalInterest float64 // monthly P&I
	Taxes             float64 // monthly
	Insurance         float64 // monthly
	MonthlyPayment    float64 // P&I + taxes + insurance
	TotalInterest     float64 // over the whole term
}

// Mortgage computes the standard fixed-rate monthly payment and its
// escrow components.
func Mortgage(p MortgageParams) MortgageResult {
	principal := p.HomePrice - p.DownPayment
	monthlyRate := p.AnnualRate / 100 / 12
	numPayments := float64(p.TermYears * 12)

	pi := payment(principal, monthlyRate, numPayments)
	taxes := p.PropertyTax / 12
	insurance := p.Insurance / 12

	return MortgageResult{
		LoanAmount:        principal,
		PrincipalInterest: pi,
		Taxes:             taxes,
		Insurance:         insurance,
		MonthlyPayment:    pi + taxes + insurance,
		TotalInterest:     pi*numPayments - principal,
	}
}

// AmortizationYear is the cumulative position after a full year of payments.
type AmortizationYear struct {
	Year      int
	Principal float64 // cumulative principal paid
	Interest  float64 // cumulative interest paid
	Balance   float64 // remaining, floored at zero
}

// Amortize returns the year-by-year amortization of a fixed-rate loan.
func Amortize(principal, annualRate float64, termYears int) []AmortizationYear {
	monthlyRate := annualRate / 100 / 12
	months := float64(termYears * 12)
	pay := payment(principal, monthlyRate, months)

	schedule := make([]AmortizationYear, 0, termYears)
	balance := principal
	var paidPrincipal, paidInterest float64

	for year := 1; year <= termYears; year++ {
		for m := 0; m < 12; m++ {
			interest := balance * monthlyRate
			princ := pay - interest
			paidInterest += interest
			paidPrincipal += princ
			balance -= princ
		}
		schedule = append(schedule, AmortizationYear{
			Year:      year,
			Principal: paidPrincipal,
			Interest:  paidInterest,
			Balance:   math.Max(0, balance),
		})
	}
	return schedule
}

// payment is the annuity formula for a fixed-rate loan.
func payment(principal, rate, periods float64) float64 {
	if rate == 0 {
		return principal / periods
	}
	growth := math.Pow(1+rate, periods)
	return principal * (rate * growth) / (growth - 1)
}
