package domain

import (
	"fmt"
	"strings"
)

// FilingStatus identifies the federal filing status a schedule is keyed by.
type FilingStatus string

const (
	FilingSingle               FilingStatus = "single"
	FilingMarriedFilingJointly FilingStatus = "married_filing_jointly"
)

// ParseFilingStatus normalizes user-supplied status strings. It accepts the
// canonical values plus the short forms people actually type.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_") {
	case "single":
		return FilingSingle, nil
	case "married_filing_jointly", "mfj", "married", "joint", "married_jointly":
		return FilingMarriedFilingJointly, nil
	default:
		return "", fmt.Errorf("unknown filing status %q (valid: single, married_filing_jointly)", s)
	}
}

// Valid reports whether the status is one of the two supported values.
func (fs FilingStatus) Valid() bool {
	return fs == FilingSingle || fs == FilingMarriedFilingJointly
}

func (fs FilingStatus) String() string {
	return string(fs)
}

// Label returns a human-readable form for reports.
func (fs FilingStatus) Label() string {
	switch fs {
	case FilingSingle:
		return "Single"
	case FilingMarriedFilingJointly:
		return "Married Filing Jointly"
	default:
		return string(fs)
	}
}

// PayFrequency is how often a paystub's employer issues paychecks.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiweekly    PayFrequency = "biweekly"
	PaySemimonthly PayFrequency = "semimonthly"
	PayMonthly     PayFrequency = "monthly"
)

// PeriodsPerYear returns the number of pay periods in a full year, or 0 for
// an unknown frequency.
func (f PayFrequency) PeriodsPerYear() int {
	switch f {
	case PayWeekly:
		return 52
	case PayBiweekly:
		return 26
	case PaySemimonthly:
		return 24
	case PayMonthly:
		return 12
	default:
		return 0
	}
}

// Valid reports whether the frequency is one of the supported values.
func (f PayFrequency) Valid() bool {
	return f.PeriodsPerYear() > 0
}

// Filing is one household's input to an estimate: the tax year and filing
// status plus every income record to aggregate. The engine never mutates a
// Filing; recomputation with edited entries is the caller's concern.
type Filing struct {
	TaxYear          int            `yaml:"tax_year" json:"tax_year"`
	FilingStatus     FilingStatus   `yaml:"filing_status" json:"filing_status"`
	ProjectToYearEnd bool           `yaml:"project_to_year_end,omitempty" json:"project_to_year_end,omitempty"`
	W2s              []W2Entry      `yaml:"w2,omitempty" json:"w2,omitempty"`
	Paystubs         []PaystubEntry `yaml:"paystubs,omitempty" json:"paystubs,omitempty"`
}
