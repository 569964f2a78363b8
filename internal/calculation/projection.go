package calculation

import (
	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// ProjectYearEnd extrapolates a partial-year paystub to year-end figures:
// year-to-date plus one current-period amount for each remaining pay period.
// Missing year-to-date or period values count as zero, so a degenerate
// projection (all zeros) is returned rather than rejected; the caller
// decides whether it is meaningful. Negative remainingPeriods is clamped to
// zero, which makes the projection of an ended job its year-to-date figures.
func ProjectYearEnd(entry domain.PaystubEntry, remainingPeriods int) (decimal.Decimal, decimal.Decimal) {
	if remainingPeriods < 0 {
		remainingPeriods = 0
	}
	periods := decimal.NewFromInt(int64(remainingPeriods))

	wages := valueOrZero(entry.YTDWages).Add(valueOrZero(entry.PeriodWages).Mul(periods))
	withheld := valueOrZero(entry.YTDWithheld).Add(valueOrZero(entry.PeriodWithheld).Mul(periods))
	return wages, withheld
}

// RemainingPeriods resolves how many pay periods are left for a paystub's
// employer, in precedence order: an explicit periods_remaining (negative
// clamps to zero), then the count derived from pay date and frequency, then
// zero. A stub marked no longer employed is always zero.
func RemainingPeriods(entry domain.PaystubEntry) int {
	if entry.StillEmployed != nil && !*entry.StillEmployed {
		return 0
	}
	if entry.PeriodsRemaining != nil {
		if *entry.PeriodsRemaining < 0 {
			return 0
		}
		return *entry.PeriodsRemaining
	}
	if n, ok := entry.PeriodsLeftInYear(); ok {
		return n
	}
	return 0
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
