package planner

import "math"

// VehicleOption identifies one way to acquire a vehicle.
type VehicleOption string

const (
	OptionCash    VehicleOption = "cash"
	OptionFinance VehicleOption = "finance"
	OptionLease   VehicleOption = "lease"
)

// VehicleParams compares buying outright, financing, and leasing over a
// horizon of Years. FinanceRate is an annual percentage; terms are months.
type VehicleParams struct {
	VehiclePrice float64
	DownPayment  float64
	Years        int
	FinanceRate  float64
	FinanceTerm  int
	ResaleValue  float64
	LeasePayment float64
	LeaseTerm    int
	LeaseFees    float64
}

// VehicleCost is one option's totals.
type VehicleCost struct {
	Total   float64 // net cost over the comparison horizon
	Monthly float64
}

// VehicleResult compares the three options; Winner is the cheapest.
type VehicleResult struct {
	Cash    VehicleCost
	Finance VehicleCost
	Lease   VehicleCost
	Winner  VehicleOption
}

// Vehicle computes the net cost of each acquisition option. Cash and finance
// are credited the resale value; a lease never builds equity, and partial
// lease terms are paid in full.
func Vehicle(p VehicleParams) VehicleResult {
	months := float64(p.Years * 12)

	cashTotal := p.VehiclePrice - p.ResaleValue

	financeAmount := p.VehiclePrice - p.DownPayment
	monthlyRate := p.FinanceRate / 100 / 12
	financePayment := payment(financeAmount, monthlyRate, float64(p.FinanceTerm))
	financeTotal := p.DownPayment + financePayment*float64(p.FinanceTerm) - p.ResaleValue

	leaseOneTerm := p.LeaseFees + p.LeasePayment*float64(p.LeaseTerm)
	numLeases := math.Ceil(months / float64(p.LeaseTerm))
	leaseTotal := leaseOneTerm * numLeases

	winner := OptionLease
	switch {
	case cashTotal <= financeTotal && cashTotal <= leaseTotal:
		winner = OptionCash
	case financeTotal <= leaseTotal:
		winner = OptionFinance
	}

	return VehicleResult{
		Cash:    VehicleCost{Total: cashTotal, Monthly: cashTotal / months},
		Finance: VehicleCost{Total: financeTotal, Monthly: financePayment},
		Lease:   VehicleCost{Total: leaseTotal, Monthly: p.LeasePayment},
		Winner:  winner,
	}
}
