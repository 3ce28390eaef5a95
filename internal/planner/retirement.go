package planner

import "math"

// RetirementParams model accumulation until retirement and drawdown after.
// Returns are annual percentages; income figures are monthly.
type RetirementParams struct {
	CurrentAge          int
	RetireAge           int
	LifeExpectancy      int
	CurrentSavings      float64
	MonthlyContribution float64
	ReturnBefore        float64 // annual % during accumulation
	ReturnDuring        float64 // annual % during retirement
	DesiredIncome       float64 // monthly, in retirement
	SocialSecurity      float64 // monthly
}

// SavingsPoint is one age on the projection curve.
type SavingsPoint struct {
	Age     int
	Savings float64 // floored at zero
}

// RetirementResult summarizes the projection.
type RetirementResult struct {
	ProjectedSavings  float64 // balance at retirement
	MonthlyIncome     float64 // sustainable withdrawal + social security
	YearsInRetirement int
	Progress          float64 // percent of goal, capped at 200
	OnTrack           bool
	Projection        []SavingsPoint
}

// Retirement projects savings growth to retirement age, then the sustainable
// monthly withdrawal that exhausts the balance at life expectancy.
func Retirement(p RetirementParams) RetirementResult {
	yearsToRetire := p.RetireAge - p.CurrentAge
	yearsInRetirement := p.LifeExpectancy - p.RetireAge

	// Accumulation: compound the current balance and the contribution stream.
	monthlyReturn := p.ReturnBefore / 100 / 12
	months := float64(yearsToRetire * 12)
	growth := math.Pow(1+monthlyReturn, months)
	contributionGrowth := months
	if monthlyReturn != 0 {
		contributionGrowth = (growth - 1) / monthlyReturn
	}
	projected := p.CurrentSavings*growth + p.MonthlyContribution*contributionGrowth

	// Distribution: annuity that runs the balance to zero at life expectancy.
	monthlyReturnDuring := p.ReturnDuring / 100 / 12
	retirementMonths := float64(yearsInRetirement * 12)
	withdrawal := payment(projected, monthlyReturnDuring, retirementMonths)

	// Goal: the balance needed to fund the desired income net of social
	// security over the same horizon.
	neededForGoal := (p.DesiredIncome - p.SocialSecurity) / payment(1, monthlyReturnDuring, retirementMonths)
	progress := projected / neededForGoal * 100

	projection := make([]SavingsPoint, 0, p.LifeExpectancy-p.CurrentAge+1)
	savings := p.CurrentSavings
	for age := p.CurrentAge; age <= p.LifeExpectancy; age++ {
		if age < p.RetireAge {
			savings = savings*(1+p.ReturnBefore/100) + p.MonthlyContribution*12
		} else {
			annualWithdrawal := (p.DesiredIncome - p.SocialSecurity) * 12
			savings = savings*(1+p.ReturnDuring/100) - annualWithdrawal
		}
		projection = append(projection, SavingsPoint{Age: age, Savings: math.Max(0, savings)})
	}

	return RetirementResult{
		ProjectedSavings:  projected,
		MonthlyIncome:     withdrawal + p.SocialSecurity,
		YearsInRetirement: yearsInRetirement,
		Progress:          math.Min(progress, 200),
		OnTrack:           progress >= 100,
		Projection:        projection,
	}
}
