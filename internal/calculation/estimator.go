package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
	"taxcast/internal/schedule"
)

// Estimator orchestrates one liability estimate: aggregate the income
// records, fetch the schedule, compute liability, reconcile against
// withholding. It holds no per-call state, so a single Estimator may serve
// concurrent calls.
type Estimator struct {
	Provider schedule.Provider
	Logger   Logger
	Debug    bool // Enable debug output for detailed calculations
}

// NewEstimator creates an estimator backed by the given schedule provider.
func NewEstimator(provider schedule.Provider) *Estimator {
	return &Estimator{
		Provider: provider,
		Logger:   NopLogger{},
	}
}

// SetLogger replaces the diagnostic sink. Passing nil restores the no-op
// logger.
func (e *Estimator) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Compose runs the full pipeline on raw entry lists for a (year, status)
// pair: aggregate, deduct, compute liability, split the balance. It fails
// with *domain.UnsupportedScheduleError when the provider has no usable
// table for the pair.
func (e *Estimator) Compose(taxYear int, status domain.FilingStatus, w2s []domain.W2Entry, stubs []domain.PaystubEntry) (*domain.Estimate, error) {
	return e.compose(taxYear, status, Aggregate(w2s, stubs))
}

// Estimate computes the result for one filing. With ProjectToYearEnd set,
// each employer's authoritative paystub is extrapolated to year end before
// totals are taken; otherwise this is Compose on the filing's entries.
func (e *Estimator) Estimate(filing *domain.Filing) (*domain.Estimate, error) {
	if filing == nil {
		return nil, fmt.Errorf("filing is required")
	}
	if !filing.ProjectToYearEnd {
		return e.Compose(filing.TaxYear, filing.FilingStatus, filing.W2s, filing.Paystubs)
	}

	totals := sumW2Entries(filing.W2s)
	for _, stub := range SelectAuthoritative(filing.Paystubs) {
		wages, withheld := e.projectedFigures(stub)
		totals.Wages = totals.Wages.Add(wages)
		totals.Withheld = totals.Withheld.Add(withheld)
	}
	return e.compose(filing.TaxYear, filing.FilingStatus, roundTotals(totals))
}

// projectedFigures returns an authoritative stub's contribution with
// year-end projection applied when the stub has periods left; otherwise its
// resolved figures as-is.
func (e *Estimator) projectedFigures(stub domain.PaystubEntry) (decimal.Decimal, decimal.Decimal) {
	remaining := RemainingPeriods(stub)
	if remaining == 0 {
		wages, _ := stub.ResolvedWages()
		withheld, _ := stub.ResolvedWithholding()
		return wages, withheld
	}

	wages, withheld := ProjectYearEnd(stub, remaining)
	if e.Debug {
		e.Logger.Debugf("projected %s over %d periods: wages=%s withheld=%s",
			stub.Employer, remaining, wages, withheld)
	}
	return wages, withheld
}

func (e *Estimator) compose(taxYear int, status domain.FilingStatus, totals domain.IncomeTotals) (*domain.Estimate, error) {
	deduction, err := e.Provider.Deduction(taxYear, status)
	if err != nil {
		return nil, err
	}
	bands, err := e.Provider.Brackets(taxYear, status)
	if err != nil {
		return nil, err
	}

	taxable := totals.Wages.Sub(deduction)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	liability, contributions, err := ComputeLiability(taxable, bands)
	if err != nil {
		return nil, err
	}

	if e.Debug {
		e.Logger.Debugf("year=%d status=%s wages=%s withheld=%s deduction=%s taxable=%s liability=%s",
			taxYear, status, totals.Wages, totals.Withheld, deduction, taxable, liability)
	}

	liability = liability.Round(0)
	balance := liability.Sub(totals.Withheld)

	refund := decimal.Zero
	due := decimal.Zero
	isRefund := balance.IsNegative()
	if isRefund {
		refund = balance.Neg()
	} else {
		due = balance
	}

	brackets := make([]domain.BracketTax, len(contributions))
	for i, c := range contributions {
		brackets[i] = domain.BracketTax{
			Rate:   c.Rate,
			Lower:  c.Lower,
			Upper:  c.Upper,
			Income: c.Income.Round(0),
			Tax:    c.Tax.Round(0),
		}
	}

	return &domain.Estimate{
		TaxYear:           taxYear,
		FilingStatus:      status,
		TotalWages:        totals.Wages,
		TotalWithheld:     totals.Withheld,
		StandardDeduction: deduction,
		TaxableIncome:     taxable,
		TaxLiability:      liability,
		Balance:           balance,
		IsRefund:          isRefund,
		RefundAmount:      refund,
		AmountDue:         due,
		Brackets:          brackets,
		CalculatedAt:      time.Now(),
	}, nil
}
