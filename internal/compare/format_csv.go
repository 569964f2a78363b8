package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Filing",
		"Type",
		"Tax Year",
		"Filing Status",
		"Total Wages",
		"Taxable Income",
		"Tax Liability",
		"Total Withheld",
		"Balance",
		"Effective Rate",
		"Liability Diff from Base",
		"Liability % Change",
		"Balance Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base variant
	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	// Write alternative variants
	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, variantType string) []string {
	return []string{
		result.VariantName,
		variantType,
		formatInt(result.TaxYear),
		string(result.FilingStatus),
		result.TotalWages.StringFixed(2),
		result.TaxableIncome.StringFixed(2),
		result.TaxLiability.StringFixed(2),
		result.TotalWithheld.StringFixed(2),
		result.Balance.StringFixed(2),
		result.EffectiveRate.StringFixed(2),
		result.LiabilityDiffFromBase.StringFixed(2),
		result.LiabilityPctFromBase.StringFixed(2),
		result.BalanceDiffFromBase.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
