package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"taxcast/internal/domain"
)

func TestProjectYearEnd(t *testing.T) {
	entry := domain.PaystubEntry{
		Employer:       "Acme",
		YTDWages:       dec(20000),
		YTDWithheld:    dec(2400),
		PeriodWages:    dec(2000),
		PeriodWithheld: dec(240),
	}

	wages, withheld := ProjectYearEnd(entry, 10)
	assert.True(t, wages.Equal(decimal.NewFromInt(40000)),
		"Expected 20000 + 2000*10, got %s", wages)
	assert.True(t, withheld.Equal(decimal.NewFromInt(4800)),
		"Expected 2400 + 240*10, got %s", withheld)
}

func TestProjectYearEnd_MissingFieldsAreZero(t *testing.T) {
	t.Run("no period figures", func(t *testing.T) {
		entry := domain.PaystubEntry{YTDWages: dec(20000), YTDWithheld: dec(2400)}
		wages, withheld := ProjectYearEnd(entry, 10)
		assert.True(t, wages.Equal(decimal.NewFromInt(20000)))
		assert.True(t, withheld.Equal(decimal.NewFromInt(2400)))
	})

	t.Run("no ytd figures", func(t *testing.T) {
		entry := domain.PaystubEntry{PeriodWages: dec(2000)}
		wages, withheld := ProjectYearEnd(entry, 5)
		assert.True(t, wages.Equal(decimal.NewFromInt(10000)))
		assert.True(t, withheld.IsZero())
	})

	t.Run("empty entry", func(t *testing.T) {
		wages, withheld := ProjectYearEnd(domain.PaystubEntry{}, 10)
		assert.True(t, wages.IsZero())
		assert.True(t, withheld.IsZero())
	})
}

func TestProjectYearEnd_NegativePeriodsClampToZero(t *testing.T) {
	entry := domain.PaystubEntry{YTDWages: dec(20000), PeriodWages: dec(2000)}

	wages, _ := ProjectYearEnd(entry, -4)
	assert.True(t, wages.Equal(decimal.NewFromInt(20000)),
		"Negative periods should project nothing beyond YTD, got %s", wages)
}

func TestProjectYearEnd_ZeroPeriods(t *testing.T) {
	entry := domain.PaystubEntry{YTDWages: dec(20000), PeriodWages: dec(2000)}

	wages, _ := ProjectYearEnd(entry, 0)
	assert.True(t, wages.Equal(decimal.NewFromInt(20000)))
}

func TestRemainingPeriods(t *testing.T) {
	intp := func(n int) *int { return &n }
	boolp := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		entry    domain.PaystubEntry
		expected int
	}{
		{
			name:     "explicit count",
			entry:    domain.PaystubEntry{PeriodsRemaining: intp(8)},
			expected: 8,
		},
		{
			name:     "negative explicit count clamps",
			entry:    domain.PaystubEntry{PeriodsRemaining: intp(-3)},
			expected: 0,
		},
		{
			name:     "no longer employed overrides count",
			entry:    domain.PaystubEntry{StillEmployed: boolp(false), PeriodsRemaining: intp(8)},
			expected: 0,
		},
		{
			name: "derived from date and frequency",
			entry: domain.PaystubEntry{
				Frequency: domain.PayMonthly,
				PayDate:   payDate(2025, time.June, 30),
			},
			expected: 6,
		},
		{
			name: "explicit count beats derivation",
			entry: domain.PaystubEntry{
				Frequency:        domain.PayMonthly,
				PayDate:          payDate(2025, time.June, 30),
				PeriodsRemaining: intp(2),
			},
			expected: 2,
		},
		{
			name:     "nothing to derive from",
			entry:    domain.PaystubEntry{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemainingPeriods(tt.entry))
		})
	}
}
