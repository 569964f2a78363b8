package calculation

import (
	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// ComputeLiability applies a progressive bracket schedule to taxable income.
// It returns the total liability and one contribution line per band that
// received income, in ascending band order. Both are unrounded; rounding to
// whole dollars happens once, when a result is composed for reporting, so
// rounding error never compounds across bands.
//
// Taxable income at or below zero yields zero liability and no
// contributions. A malformed band ladder fails with
// *domain.UnsupportedScheduleError before any band is evaluated.
func ComputeLiability(taxableIncome decimal.Decimal, bands []domain.BracketBand) (decimal.Decimal, []domain.BracketTax, error) {
	if err := domain.ValidateBands(0, "", bands); err != nil {
		return decimal.Zero, nil, err
	}
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil, nil
	}

	var liability decimal.Decimal
	var contributions []domain.BracketTax
	for _, band := range bands {
		if taxableIncome.LessThanOrEqual(band.Lower) {
			break
		}
		top := taxableIncome
		if !band.Unbounded() {
			top = decimal.Min(taxableIncome, *band.Upper)
		}
		income := top.Sub(band.Lower)
		if !income.IsPositive() {
			continue
		}
		tax := income.Mul(band.Rate)
		liability = liability.Add(tax)
		contributions = append(contributions, domain.BracketTax{
			Rate:   band.Rate,
			Lower:  band.Lower,
			Upper:  band.Upper,
			Income: income,
			Tax:    tax,
		})
	}
	return liability, contributions, nil
}
