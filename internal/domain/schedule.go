package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BracketBand is one marginal-rate interval of taxable income. Lower is
// inclusive, Upper exclusive; a nil Upper marks the final, unbounded band.
type BracketBand struct {
	Rate  decimal.Decimal  `yaml:"rate" json:"rate"`
	Lower decimal.Decimal  `yaml:"lower" json:"lower"`
	Upper *decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty"`
}

// Unbounded reports whether this is the final open-ended band.
func (b BracketBand) Unbounded() bool {
	return b.Upper == nil
}

// Width returns Upper − Lower for a bounded band; unbounded bands have no
// width and return false.
func (b BracketBand) Width() (decimal.Decimal, bool) {
	if b.Upper == nil {
		return decimal.Zero, false
	}
	return b.Upper.Sub(b.Lower), true
}

// TaxSchedule is the bracket table and standard deduction for one
// (tax year, filing status) pair.
type TaxSchedule struct {
	Year              int             `yaml:"year" json:"year"`
	Status            FilingStatus    `yaml:"status" json:"status"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	Bands             []BracketBand   `yaml:"brackets" json:"brackets"`
}

// ValidateBands checks the structural invariants every schedule must satisfy
// before it is safe to compute against: non-empty, first band starting at
// zero, contiguous ascending bounds, rates in (0, 1], and exactly one
// unbounded band in last position. The returned error is an
// *UnsupportedScheduleError naming the first defect found.
func ValidateBands(year int, status FilingStatus, bands []BracketBand) error {
	if len(bands) == 0 {
		return NewUnsupportedScheduleError(year, status, "bracket table is empty")
	}
	if !bands[0].Lower.IsZero() {
		return NewUnsupportedScheduleError(year, status,
			fmt.Sprintf("first bracket starts at %s, want 0", bands[0].Lower))
	}
	one := decimal.NewFromInt(1)
	for i, b := range bands {
		if b.Rate.LessThanOrEqual(decimal.Zero) || b.Rate.GreaterThan(one) {
			return NewUnsupportedScheduleError(year, status,
				fmt.Sprintf("bracket %d rate %s outside (0, 1]", i, b.Rate))
		}
		if b.Lower.IsNegative() {
			return NewUnsupportedScheduleError(year, status,
				fmt.Sprintf("bracket %d lower bound %s is negative", i, b.Lower))
		}
		last := i == len(bands)-1
		if last {
			if !b.Unbounded() {
				return NewUnsupportedScheduleError(year, status, "final bracket must be unbounded")
			}
			continue
		}
		if b.Unbounded() {
			return NewUnsupportedScheduleError(year, status,
				fmt.Sprintf("bracket %d is unbounded but not last", i))
		}
		if b.Upper.LessThanOrEqual(b.Lower) {
			return NewUnsupportedScheduleError(year, status,
				fmt.Sprintf("bracket %d upper bound %s not above lower bound %s", i, b.Upper, b.Lower))
		}
		if !b.Upper.Equal(bands[i+1].Lower) {
			return NewUnsupportedScheduleError(year, status,
				fmt.Sprintf("bracket %d ends at %s but bracket %d starts at %s", i, b.Upper, i+1, bands[i+1].Lower))
		}
	}
	return nil
}

// Validate checks the band invariants plus the deduction sign.
func (s TaxSchedule) Validate() error {
	if !s.Status.Valid() {
		return NewUnsupportedScheduleError(s.Year, s.Status, "unknown filing status")
	}
	if s.StandardDeduction.IsNegative() {
		return NewUnsupportedScheduleError(s.Year, s.Status,
			fmt.Sprintf("standard deduction %s is negative", s.StandardDeduction))
	}
	return ValidateBands(s.Year, s.Status, s.Bands)
}
