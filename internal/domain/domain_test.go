package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected FilingStatus
		ok       bool
	}{
		{"single", FilingSingle, true},
		{"Single", FilingSingle, true},
		{"  SINGLE  ", FilingSingle, true},
		{"married_filing_jointly", FilingMarriedFilingJointly, true},
		{"Married Filing Jointly", FilingMarriedFilingJointly, true},
		{"mfj", FilingMarriedFilingJointly, true},
		{"married", FilingMarriedFilingJointly, true},
		{"joint", FilingMarriedFilingJointly, true},
		{"head_of_household", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseFilingStatus(tt.input)
		if tt.ok {
			assert.NoError(t, err, "input %q should parse", tt.input)
			assert.Equal(t, tt.expected, got)
		} else {
			assert.Error(t, err, "input %q should not parse", tt.input)
		}
	}
}

func TestFilingStatus_Valid(t *testing.T) {
	assert.True(t, FilingSingle.Valid())
	assert.True(t, FilingMarriedFilingJointly.Valid())
	assert.False(t, FilingStatus("widowed").Valid())
	assert.False(t, FilingStatus("").Valid())
}

func TestPayFrequency_PeriodsPerYear(t *testing.T) {
	assert.Equal(t, 52, PayWeekly.PeriodsPerYear())
	assert.Equal(t, 26, PayBiweekly.PeriodsPerYear())
	assert.Equal(t, 24, PaySemimonthly.PeriodsPerYear())
	assert.Equal(t, 12, PayMonthly.PeriodsPerYear())
	assert.Equal(t, 0, PayFrequency("daily").PeriodsPerYear())
}

func TestPaystubEntry_WageBasis(t *testing.T) {
	ytd := decimal.NewFromInt(40000)
	ytdWithheld := decimal.NewFromInt(4800)
	period := decimal.NewFromInt(2000)

	t.Run("ytd preferred over period", func(t *testing.T) {
		stub := PaystubEntry{
			YTDWages:       &ytd,
			YTDWithheld:    &ytdWithheld,
			PeriodWages:    &period,
			PeriodWithheld: &period,
		}
		wages, basis := stub.ResolvedWages()
		assert.Equal(t, BasisYTD, basis)
		assert.True(t, wages.Equal(ytd))

		withheld, basis := stub.ResolvedWithholding()
		assert.Equal(t, BasisYTD, basis)
		assert.True(t, withheld.Equal(ytdWithheld))
	})

	t.Run("period used when ytd missing", func(t *testing.T) {
		stub := PaystubEntry{PeriodWages: &period}
		wages, basis := stub.ResolvedWages()
		assert.Equal(t, BasisPeriod, basis)
		assert.True(t, wages.Equal(period))
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		stub := PaystubEntry{}
		wages, basis := stub.ResolvedWages()
		assert.Equal(t, BasisNone, basis)
		assert.True(t, wages.IsZero())
		assert.False(t, stub.Usable())
	})

	t.Run("withholding alone is not usable", func(t *testing.T) {
		stub := PaystubEntry{YTDWithheld: &ytdWithheld}
		assert.False(t, stub.Usable())
	})

	t.Run("wages plus withholding is usable", func(t *testing.T) {
		stub := PaystubEntry{PeriodWages: &period, YTDWithheld: &ytdWithheld}
		assert.True(t, stub.Usable())
	})
}

func TestPaystubEntry_PeriodsLeftInYear(t *testing.T) {
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name     string
		entry    PaystubEntry
		expected int
		ok       bool
	}{
		{
			name:     "biweekly mid december",
			entry:    PaystubEntry{Frequency: PayBiweekly, PayDate: date(2025, time.December, 19)},
			expected: 0,
			ok:       true,
		},
		{
			name:     "biweekly start of december",
			entry:    PaystubEntry{Frequency: PayBiweekly, PayDate: date(2025, time.December, 5)},
			expected: 1,
			ok:       true,
		},
		{
			name:     "monthly end of june",
			entry:    PaystubEntry{Frequency: PayMonthly, PayDate: date(2025, time.June, 30)},
			expected: 6,
			ok:       true,
		},
		{
			name:     "weekly new year",
			entry:    PaystubEntry{Frequency: PayWeekly, PayDate: date(2025, time.January, 3)},
			expected: 51,
			ok:       true,
		},
		{
			name:  "no pay date",
			entry: PaystubEntry{Frequency: PayMonthly},
			ok:    false,
		},
		{
			name:  "no frequency",
			entry: PaystubEntry{PayDate: date(2025, time.June, 30)},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.PeriodsLeftInYear()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestValidateBands(t *testing.T) {
	d := decimal.NewFromInt

	unbounded := func(rate float64, lower int64) BracketBand {
		return BracketBand{Rate: decimal.NewFromFloat(rate), Lower: d(lower)}
	}
	band := func(rate float64, lower, upper int64) BracketBand {
		u := d(upper)
		return BracketBand{Rate: decimal.NewFromFloat(rate), Lower: d(lower), Upper: &u}
	}

	t.Run("valid ladder", func(t *testing.T) {
		bands := []BracketBand{
			band(0.10, 0, 11600),
			band(0.12, 11600, 47150),
			unbounded(0.22, 47150),
		}
		assert.NoError(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("empty", func(t *testing.T) {
		err := ValidateBands(2025, FilingSingle, nil)
		require.Error(t, err)

		var schedErr *UnsupportedScheduleError
		require.True(t, errors.As(err, &schedErr))
		assert.Equal(t, 2025, schedErr.Year)
		assert.Equal(t, FilingSingle, schedErr.Status)
	})

	t.Run("first band must start at zero", func(t *testing.T) {
		bands := []BracketBand{
			band(0.10, 100, 11600),
			unbounded(0.12, 11600),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("gap between bands", func(t *testing.T) {
		bands := []BracketBand{
			band(0.10, 0, 11600),
			unbounded(0.12, 12000),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("zero rate", func(t *testing.T) {
		bands := []BracketBand{
			band(0, 0, 11600),
			unbounded(0.12, 11600),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("rate above one", func(t *testing.T) {
		bands := []BracketBand{
			band(1.5, 0, 11600),
			unbounded(0.12, 11600),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("bounded top band", func(t *testing.T) {
		bands := []BracketBand{
			band(0.10, 0, 11600),
			band(0.12, 11600, 47150),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("unbounded band before the top", func(t *testing.T) {
		bands := []BracketBand{
			unbounded(0.10, 0),
			unbounded(0.12, 11600),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})

	t.Run("inverted band", func(t *testing.T) {
		bands := []BracketBand{
			band(0.10, 0, 11600),
			band(0.12, 47150, 11600),
			unbounded(0.22, 47150),
		}
		assert.Error(t, ValidateBands(2025, FilingSingle, bands))
	})
}

func TestUnsupportedScheduleError_Message(t *testing.T) {
	err := NewUnsupportedScheduleError(2030, FilingMarriedFilingJointly, "no table on file")
	assert.Contains(t, err.Error(), "2030")
	assert.Contains(t, err.Error(), "married_filing_jointly")
	assert.Contains(t, err.Error(), "no table on file")
}

func TestInvalidEntryError_Message(t *testing.T) {
	err := NewInvalidEntryError("w2-1", "negative wages")
	assert.Contains(t, err.Error(), "w2-1")
	assert.Contains(t, err.Error(), "negative wages")
}
