package compare

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

func testComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		BaseVariantName: "single 2025",
		InputPath:       "testdata/filing.yaml",
		BaseResult: &ComparisonResult{
			VariantName:   "single 2025",
			TaxYear:       2025,
			FilingStatus:  domain.FilingSingle,
			TotalWages:    decimal.NewFromInt(60000),
			TaxableIncome: decimal.NewFromInt(45000),
			TaxLiability:  decimal.NewFromInt(5168),
			TotalWithheld: decimal.NewFromInt(6000),
			Balance:       decimal.NewFromInt(-832),
			EffectiveRate: decimal.NewFromFloat(8.61),
			MarginalRate:  decimal.NewFromInt(12),
		},
		AlternativeResults: []ComparisonResult{
			{
				VariantName:           "married_filing_jointly 2025",
				TaxYear:               2025,
				FilingStatus:          domain.FilingMarriedFilingJointly,
				TotalWages:            decimal.NewFromInt(60000),
				TaxableIncome:         decimal.NewFromInt(30000),
				TaxLiability:          decimal.NewFromInt(3136),
				TotalWithheld:         decimal.NewFromInt(6000),
				Balance:               decimal.NewFromInt(-2864),
				EffectiveRate:         decimal.NewFromFloat(5.23),
				MarginalRate:          decimal.NewFromInt(12),
				LiabilityDiffFromBase: decimal.NewFromInt(-2032),
				LiabilityPctFromBase:  decimal.NewFromFloat(-39.3),
				BalanceDiffFromBase:   decimal.NewFromInt(-2032),
			},
		},
		Recommendations: []string{
			"Lowest Tax: married_filing_jointly 2025 cuts the estimated liability by $2032 (39.3%)",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(testComparisonSet())

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	if !contains(result, "FILING COMPARISON") {
		t.Error("Expected header in output")
	}

	if !contains(result, "Base Filing: single 2025") {
		t.Error("Expected base variant name in output")
	}

	if !contains(result, "Input: testdata/filing.yaml") {
		t.Error("Expected input path in output")
	}

	if !contains(result, "single 2025 (base)") {
		t.Error("Expected base variant in table")
	}

	if !contains(result, "married_filing_jointly 2025") {
		t.Error("Expected alternative variant in table")
	}

	if !contains(result, "$832 refund") {
		t.Error("Expected base outcome in table")
	}

	if !contains(result, "$2864 refund") {
		t.Error("Expected alternative outcome in table")
	}

	if !contains(result, "-$2032 (-39.3%)") {
		t.Error("Expected liability delta in comparison details")
	}

	if !contains(result, "RECOMMENDATIONS") {
		t.Error("Expected recommendations section")
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}

	compSet := testComparisonSet()
	compSet.AlternativeResults = []ComparisonResult{}
	compSet.Recommendations = []string{}

	result := formatter.Format(compSet)

	if result == "" {
		t.Fatal("Expected formatted output, got empty string")
	}

	// Should still have header and base variant
	if !contains(result, "FILING COMPARISON") {
		t.Error("Expected header in output")
	}

	if !contains(result, "single 2025 (base)") {
		t.Error("Expected base variant in table")
	}

	// Should not have alternative variants or their sections
	if contains(result, "married_filing_jointly") {
		t.Error("Should not have alternative variants in output")
	}

	if contains(result, "COMPARISON TO BASE") {
		t.Error("Should not have comparison details without alternatives")
	}
}

func TestTableFormatter_formatRow(t *testing.T) {
	formatter := &TableFormatter{}

	result := &ComparisonResult{
		VariantName:   "single 2025",
		TaxableIncome: decimal.NewFromInt(45000),
		TaxLiability:  decimal.NewFromInt(5168),
		TotalWithheld: decimal.NewFromInt(6000),
		Balance:       decimal.NewFromInt(-832),
	}

	baseRow := formatter.formatRow(result, 34, 15, true)
	if !contains(baseRow, "single 2025 (base)") {
		t.Errorf("Expected base marker in row, got %q", baseRow)
	}

	altRow := formatter.formatRow(result, 34, 15, false)
	if contains(altRow, "(base)") {
		t.Errorf("Expected no base marker in row, got %q", altRow)
	}

	if !contains(altRow, "$45000") || !contains(altRow, "$5168") {
		t.Errorf("Expected money columns in row, got %q", altRow)
	}
}

func TestTableFormatter_formatOutcome(t *testing.T) {
	formatter := &TableFormatter{}

	due := &ComparisonResult{Balance: decimal.NewFromInt(1168)}
	if got := formatter.formatOutcome(due); got != "$1168 due" {
		t.Errorf("Expected '$1168 due', got %q", got)
	}

	refund := &ComparisonResult{Balance: decimal.NewFromInt(-832)}
	if got := formatter.formatOutcome(refund); got != "$832 refund" {
		t.Errorf("Expected '$832 refund', got %q", got)
	}

	even := &ComparisonResult{Balance: decimal.Zero}
	if got := formatter.formatOutcome(even); got != "break even" {
		t.Errorf("Expected 'break even', got %q", got)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.FormatCompact(testComparisonSet())

	if !contains(result, "Base: single 2025") {
		t.Error("Expected base variant in compact output")
	}

	if !contains(result, "married_filing_jointly 2025: -$2032") {
		t.Errorf("Expected liability change in compact output, got %q", result)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(testComparisonSet())

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result == "" {
		t.Fatal("Expected CSV output, got empty string")
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus two rows, got %d lines", len(lines))
	}

	if !contains(lines[0], "Filing,Type,Tax Year,Filing Status") {
		t.Errorf("Expected CSV header, got %q", lines[0])
	}

	if !contains(lines[1], "single 2025,base,2025,single,60000.00,45000.00,5168.00,6000.00,-832.00") {
		t.Errorf("Expected base row values, got %q", lines[1])
	}

	if !contains(lines[2], "married_filing_jointly 2025,alternative") {
		t.Errorf("Expected alternative row, got %q", lines[2])
	}

	if !contains(lines[2], "-2032.00,-39.30,-2032.00") {
		t.Errorf("Expected comparison columns, got %q", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{}

	result, err := formatter.Format(testComparisonSet())

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result == "" {
		t.Fatal("Expected JSON output, got empty string")
	}

	if !contains(result, "\"baseVariantName\"") {
		t.Error("Expected baseVariantName field in JSON")
	}

	if !contains(result, "\"single 2025\"") {
		t.Error("Expected base variant name in JSON")
	}

	if !contains(result, "\"alternativeResults\"") {
		t.Error("Expected alternativeResults field in JSON")
	}

	if !contains(result, "\"recommendations\"") {
		t.Error("Expected recommendations field in JSON")
	}
}

func TestJSONFormatter_Format_Pretty(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}

	result, err := formatter.Format(testComparisonSet())

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !contains(result, "\n  \"baseVariantName\"") {
		t.Error("Expected indented output in pretty mode")
	}
}
