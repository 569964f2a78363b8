package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// W2Entry is an annual wage summary: box 1 wages and box 2 federal income tax
// withheld, plus informational fields that are carried through but never
// aggregated.
type W2Entry struct {
	ID          string `yaml:"id,omitempty" json:"id,omitempty"`
	Employer    string `yaml:"employer,omitempty" json:"employer,omitempty"`
	EmployerEIN string `yaml:"employer_ein,omitempty" json:"employer_ein,omitempty"`

	Wages    decimal.Decimal `yaml:"wages" json:"wages"`
	Withheld decimal.Decimal `yaml:"withheld" json:"withheld"`

	// Boxes 3 and 5; informational only.
	SocialSecurityWages *decimal.Decimal `yaml:"social_security_wages,omitempty" json:"social_security_wages,omitempty"`
	MedicareWages       *decimal.Decimal `yaml:"medicare_wages,omitempty" json:"medicare_wages,omitempty"`
}

// PaystubEntry is a single paycheck record. Year-to-date figures are
// cumulative through the pay date; period figures cover one paycheck. Either
// may be absent, which is why readers go through ResolvedWages and
// ResolvedWithholding instead of touching the fields.
type PaystubEntry struct {
	ID        string       `yaml:"id,omitempty" json:"id,omitempty"`
	Employer  string       `yaml:"employer,omitempty" json:"employer,omitempty"`
	Frequency PayFrequency `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	PayDate   *time.Time   `yaml:"pay_date,omitempty" json:"pay_date,omitempty"`

	YTDWages       *decimal.Decimal `yaml:"ytd_wages,omitempty" json:"ytd_wages,omitempty"`
	YTDWithheld    *decimal.Decimal `yaml:"ytd_withheld,omitempty" json:"ytd_withheld,omitempty"`
	PeriodWages    *decimal.Decimal `yaml:"period_wages,omitempty" json:"period_wages,omitempty"`
	PeriodWithheld *decimal.Decimal `yaml:"period_withheld,omitempty" json:"period_withheld,omitempty"`

	StillEmployed    *bool `yaml:"still_employed,omitempty" json:"still_employed,omitempty"`
	PeriodsRemaining *int  `yaml:"periods_remaining,omitempty" json:"periods_remaining,omitempty"`
}

// WageBasis names which field a resolved figure came from.
type WageBasis int

const (
	BasisNone WageBasis = iota
	BasisYTD
	BasisPeriod
)

func (b WageBasis) String() string {
	switch b {
	case BasisYTD:
		return "ytd"
	case BasisPeriod:
		return "period"
	default:
		return "none"
	}
}

// ResolvedWages returns the wage figure this paystub contributes and the
// field it came from. A year-to-date total wins over a single-period amount
// because it already contains every prior period.
func (p PaystubEntry) ResolvedWages() (decimal.Decimal, WageBasis) {
	if p.YTDWages != nil {
		return *p.YTDWages, BasisYTD
	}
	if p.PeriodWages != nil {
		return *p.PeriodWages, BasisPeriod
	}
	return decimal.Zero, BasisNone
}

// ResolvedWithholding returns the withholding figure and its source field,
// with the same year-to-date preference as ResolvedWages.
func (p PaystubEntry) ResolvedWithholding() (decimal.Decimal, WageBasis) {
	if p.YTDWithheld != nil {
		return *p.YTDWithheld, BasisYTD
	}
	if p.PeriodWithheld != nil {
		return *p.PeriodWithheld, BasisPeriod
	}
	return decimal.Zero, BasisNone
}

// Usable reports whether the paystub carries at least one wage figure and at
// least one withholding figure. Unusable entries are rejected at validation;
// the aggregation code never sees them.
func (p PaystubEntry) Usable() bool {
	_, wb := p.ResolvedWages()
	_, hb := p.ResolvedWithholding()
	return wb != BasisNone && hb != BasisNone
}

// PeriodsLeftInYear derives how many more paychecks this employer will issue
// before the end of the pay date's calendar year, stepping one frequency
// interval at a time. It reports false when the frequency or pay date is
// missing. Semimonthly is approximated as a 15-day interval.
func (p PaystubEntry) PeriodsLeftInYear() (int, bool) {
	if p.PayDate == nil || !p.Frequency.Valid() {
		return 0, false
	}

	step := func(t time.Time) time.Time {
		switch p.Frequency {
		case PayWeekly:
			return t.AddDate(0, 0, 7)
		case PayBiweekly:
			return t.AddDate(0, 0, 14)
		case PaySemimonthly:
			return t.AddDate(0, 0, 15)
		default: // PayMonthly
			return t.AddDate(0, 1, 0)
		}
	}

	count := 0
	year := p.PayDate.Year()
	for t := step(*p.PayDate); t.Year() == year; t = step(t) {
		count++
	}
	return count, true
}
