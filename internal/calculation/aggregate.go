package calculation

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// unlabeledGroup is the group key shared by every paystub without an
// employer label. Distinct unlabeled employers therefore merge into one
// group and only the authoritative entry among them counts; callers who
// need them kept apart must label the entries.
const unlabeledGroup = "unlabeled"

// normalizeEmployer produces the grouping key for an employer label.
func normalizeEmployer(label string) string {
	n := strings.ToLower(strings.TrimSpace(label))
	if n == "" {
		return unlabeledGroup
	}
	return n
}

// Aggregate reduces W-2 and paystub entries to a single pair of whole-dollar
// totals. W-2 entries are summed directly. Paystubs are grouped by
// normalized employer label and only the authoritative entry per group
// contributes, since paystub figures are cumulative and two stubs from one
// employer describe overlapping income, not additional income.
//
// Empty or nil entry lists yield zero totals; there are no error conditions.
func Aggregate(w2s []domain.W2Entry, stubs []domain.PaystubEntry) domain.IncomeTotals {
	totals := sumW2Entries(w2s)
	for _, stub := range SelectAuthoritative(stubs) {
		wages, _ := stub.ResolvedWages()
		withheld, _ := stub.ResolvedWithholding()
		totals.Wages = totals.Wages.Add(wages)
		totals.Withheld = totals.Withheld.Add(withheld)
	}
	return roundTotals(totals)
}

// SelectAuthoritative picks the single paystub that speaks for each employer
// group: the most recent by pay date, falling back to highest year-to-date
// wages when dates are missing or equal. Results come back ordered by group
// key so repeated calls are deterministic.
func SelectAuthoritative(stubs []domain.PaystubEntry) []domain.PaystubEntry {
	if len(stubs) == 0 {
		return nil
	}

	groups := make(map[string][]domain.PaystubEntry)
	for _, stub := range stubs {
		key := normalizeEmployer(stub.Employer)
		groups[key] = append(groups[key], stub)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	selected := make([]domain.PaystubEntry, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool {
			return moreAuthoritative(group[i], group[j])
		})
		selected = append(selected, group[0])
	}
	return selected
}

// moreAuthoritative reports whether a should be preferred over b as the
// entry that represents their shared employer: later pay date first, then
// higher year-to-date wages. Full ties keep input order.
func moreAuthoritative(a, b domain.PaystubEntry) bool {
	if a.PayDate != nil && b.PayDate != nil && !a.PayDate.Equal(*b.PayDate) {
		return a.PayDate.After(*b.PayDate)
	}
	return ytdWagesOrZero(a).GreaterThan(ytdWagesOrZero(b))
}

func ytdWagesOrZero(p domain.PaystubEntry) decimal.Decimal {
	if p.YTDWages != nil {
		return *p.YTDWages
	}
	return decimal.Zero
}

func sumW2Entries(w2s []domain.W2Entry) domain.IncomeTotals {
	var totals domain.IncomeTotals
	for _, w2 := range w2s {
		totals.Wages = totals.Wages.Add(w2.Wages)
		totals.Withheld = totals.Withheld.Add(w2.Withheld)
	}
	return totals
}

func roundTotals(t domain.IncomeTotals) domain.IncomeTotals {
	return domain.IncomeTotals{
		Wages:    t.Wages.Round(0),
		Withheld: t.Withheld.Round(0),
	}
}
