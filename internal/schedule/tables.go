package schedule

import (
	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// BUILT-IN TABLE ASSUMPTIONS:
//
// 1. 2024 brackets and standard deductions are the published IRS figures.
//
// 2. 2025 reuses the 2024 bracket boundaries with the 2025 standard
//    deduction estimates ($15,000 single / $30,000 MFJ).
//    - No inflation indexing is applied to the boundaries.
//
// 3. Only single and married-filing-jointly are shipped; other statuses
//    must come from a user-supplied schedules file.

func band(rate float64, lower, upper int64) domain.BracketBand {
	u := decimal.NewFromInt(upper)
	return domain.BracketBand{
		Rate:  decimal.NewFromFloat(rate),
		Lower: decimal.NewFromInt(lower),
		Upper: &u,
	}
}

func topBand(rate float64, lower int64) domain.BracketBand {
	return domain.BracketBand{
		Rate:  decimal.NewFromFloat(rate),
		Lower: decimal.NewFromInt(lower),
	}
}

func singleBands() []domain.BracketBand {
	return []domain.BracketBand{
		band(0.10, 0, 11600),
		band(0.12, 11600, 47150),
		band(0.22, 47150, 100525),
		band(0.24, 100525, 191950),
		band(0.32, 191950, 243725),
		band(0.35, 243725, 609350),
		topBand(0.37, 609350),
	}
}

func marriedJointBands() []domain.BracketBand {
	return []domain.BracketBand{
		band(0.10, 0, 23200),
		band(0.12, 23200, 94300),
		band(0.22, 94300, 201050),
		band(0.24, 201050, 383900),
		band(0.32, 383900, 487450),
		band(0.35, 487450, 731200),
		topBand(0.37, 731200),
	}
}

// BuiltinSchedules returns a fresh copy of the tables shipped with the
// binary: 2024 and 2025, single and married filing jointly.
func BuiltinSchedules() []domain.TaxSchedule {
	return []domain.TaxSchedule{
		{
			Year:              2024,
			Status:            domain.FilingSingle,
			StandardDeduction: decimal.NewFromInt(14600),
			Bands:             singleBands(),
		},
		{
			Year:              2024,
			Status:            domain.FilingMarriedFilingJointly,
			StandardDeduction: decimal.NewFromInt(29200),
			Bands:             marriedJointBands(),
		},
		{
			Year:              2025,
			Status:            domain.FilingSingle,
			StandardDeduction: decimal.NewFromInt(15000),
			Bands:             singleBands(),
		},
		{
			Year:              2025,
			Status:            domain.FilingMarriedFilingJointly,
			StandardDeduction: decimal.NewFromInt(30000),
			Bands:             marriedJointBands(),
		},
	}
}
