package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxcast/internal/domain"
)

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func payDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestAggregate_W2Only(t *testing.T) {
	w2s := []domain.W2Entry{
		{Employer: "Acme", Wages: decimal.NewFromInt(60000), Withheld: decimal.NewFromInt(6000)},
		{Employer: "Globex", Wages: decimal.NewFromInt(15000), Withheld: decimal.NewFromInt(1200)},
	}

	totals := Aggregate(w2s, nil)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(75000)),
		"Expected 75000 wages, got %s", totals.Wages)
	assert.True(t, totals.Withheld.Equal(decimal.NewFromInt(7200)),
		"Expected 7200 withheld, got %s", totals.Withheld)
}

func TestAggregate_EmptyInputs(t *testing.T) {
	totals := Aggregate(nil, nil)
	assert.True(t, totals.Wages.IsZero())
	assert.True(t, totals.Withheld.IsZero())

	totals = Aggregate([]domain.W2Entry{}, []domain.PaystubEntry{})
	assert.True(t, totals.Wages.IsZero())
	assert.True(t, totals.Withheld.IsZero())
}

func TestAggregate_SameEmployerMostRecentWins(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{
			Employer:    "Acme",
			PayDate:     payDate(2025, time.January, 15),
			YTDWages:    dec(5000),
			YTDWithheld: dec(500),
		},
		{
			Employer:    "Acme",
			PayDate:     payDate(2025, time.February, 15),
			YTDWages:    dec(10000),
			YTDWithheld: dec(1000),
		},
	}

	totals := Aggregate(nil, stubs)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(10000)),
		"Cumulative stubs must not be added together, got %s", totals.Wages)
	assert.True(t, totals.Withheld.Equal(decimal.NewFromInt(1000)))
}

func TestAggregate_DuplicateEntriesCountOnce(t *testing.T) {
	stub := domain.PaystubEntry{
		Employer:    "Acme",
		YTDWages:    dec(20000),
		YTDWithheld: dec(2000),
	}

	totals := Aggregate(nil, []domain.PaystubEntry{stub, stub})
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(20000)),
		"Identical stubs should contribute once, got %s", totals.Wages)
}

func TestAggregate_EmployerLabelNormalization(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{Employer: "Acme Corp", YTDWages: dec(8000)},
		{Employer: "  acme corp ", YTDWages: dec(9000)},
	}

	totals := Aggregate(nil, stubs)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(9000)),
		"Labels differing only in case and spacing share a group, got %s", totals.Wages)
}

func TestAggregate_UnlabeledEntriesShareOneGroup(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{YTDWages: dec(7000)},
		{YTDWages: dec(4000)},
	}

	totals := Aggregate(nil, stubs)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(7000)),
		"Unlabeled stubs merge and the highest YTD wins, got %s", totals.Wages)
}

func TestAggregate_DistinctEmployersAdd(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{Employer: "Acme", YTDWages: dec(30000), YTDWithheld: dec(3000)},
		{Employer: "Globex", YTDWages: dec(12000), YTDWithheld: dec(900)},
	}
	w2s := []domain.W2Entry{
		{Employer: "Initech", Wages: decimal.NewFromInt(5000), Withheld: decimal.NewFromInt(250)},
	}

	totals := Aggregate(w2s, stubs)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(47000)),
		"Expected 47000, got %s", totals.Wages)
	assert.True(t, totals.Withheld.Equal(decimal.NewFromInt(4150)),
		"Expected 4150, got %s", totals.Withheld)
}

func TestAggregate_PeriodFiguresWhenYTDMissing(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{Employer: "Acme", PeriodWages: dec(2000), PeriodWithheld: dec(240)},
	}

	totals := Aggregate(nil, stubs)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(2000)))
	assert.True(t, totals.Withheld.Equal(decimal.NewFromInt(240)))
}

func TestAggregate_RoundsTotals(t *testing.T) {
	w2s := []domain.W2Entry{
		{Wages: decimal.NewFromFloat(100.50), Withheld: decimal.NewFromFloat(10.49)},
	}

	totals := Aggregate(w2s, nil)
	assert.True(t, totals.Wages.Equal(decimal.NewFromInt(101)),
		"Half rounds away from zero, got %s", totals.Wages)
	assert.True(t, totals.Withheld.Equal(decimal.NewFromInt(10)),
		"Expected 10, got %s", totals.Withheld)
}

func TestSelectAuthoritative_Ordering(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{Employer: "Globex", PayDate: payDate(2025, time.March, 1), YTDWages: dec(3000)},
		{Employer: "Acme", PayDate: payDate(2025, time.January, 15), YTDWages: dec(5000)},
		{Employer: "Acme", PayDate: payDate(2025, time.February, 15), YTDWages: dec(10000)},
	}

	selected := SelectAuthoritative(stubs)
	require.Len(t, selected, 2)

	// Groups come back sorted by normalized label.
	assert.Equal(t, "Acme", selected[0].Employer)
	assert.True(t, selected[0].YTDWages.Equal(decimal.NewFromInt(10000)),
		"Most recent Acme stub should win, got %s", selected[0].YTDWages)
	assert.Equal(t, "Globex", selected[1].Employer)
}

func TestSelectAuthoritative_FallsBackToYTDWages(t *testing.T) {
	stubs := []domain.PaystubEntry{
		{Employer: "Acme", YTDWages: dec(5000)},
		{Employer: "Acme", YTDWages: dec(12000)},
		{Employer: "Acme", PayDate: payDate(2025, time.June, 1), YTDWages: dec(8000)},
	}

	selected := SelectAuthoritative(stubs)
	require.Len(t, selected, 1)
	assert.True(t, selected[0].YTDWages.Equal(decimal.NewFromInt(12000)),
		"Without comparable dates the highest YTD should win, got %s", selected[0].YTDWages)
}

func TestSelectAuthoritative_Empty(t *testing.T) {
	assert.Nil(t, SelectAuthoritative(nil))
	assert.Nil(t, SelectAuthoritative([]domain.PaystubEntry{}))
}
