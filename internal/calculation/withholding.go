package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// WithholdingPlan is the per-paycheck adjustment that would bring a filing's
// year-end balance to zero. A positive PerPeriodChange means withhold more
// each remaining paycheck; a negative one means withholding could be reduced
// by that much without creating an amount due.
type WithholdingPlan struct {
	Estimate         *domain.Estimate `json:"estimate"`
	RemainingPeriods int              `json:"remainingPeriods"`
	PerPeriodChange  decimal.Decimal  `json:"perPeriodChange"`
}

// PlanWithholding estimates the filing, counts the paychecks still to come
// across every employer's authoritative paystub, and spreads the projected
// balance evenly over them. It fails when no pay periods remain, since there
// is then no paycheck left to adjust.
func (e *Estimator) PlanWithholding(filing *domain.Filing) (*WithholdingPlan, error) {
	estimate, err := e.Estimate(filing)
	if err != nil {
		return nil, err
	}

	remaining := 0
	for _, stub := range SelectAuthoritative(filing.Paystubs) {
		remaining += RemainingPeriods(stub)
	}
	if remaining == 0 {
		return nil, fmt.Errorf("no pay periods remain to adjust withholding for year %d", filing.TaxYear)
	}

	perPeriod := estimate.Balance.Div(decimal.NewFromInt(int64(remaining))).Round(2)
	return &WithholdingPlan{
		Estimate:         estimate,
		RemainingPeriods: remaining,
		PerPeriodChange:  perPeriod,
	}, nil
}
