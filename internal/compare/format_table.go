package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing filing variants
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("FILING COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Filing: %s\n", compSet.BaseVariantName))
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Input: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 34
	numWidth := 15

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Filing",
		numWidth, "Taxable Income",
		numWidth, "Tax Liability",
		numWidth, "Withheld",
		numWidth, "Outcome"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base variant row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative variants
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.VariantName))

			// Liability difference
			liabilitySymbol := tf.deltaSymbol(alt.LiabilityDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Tax Liability:    %s$%s (%s%%)\n",
				liabilitySymbol,
				alt.LiabilityDiffFromBase.Abs().StringFixed(0),
				alt.LiabilityPctFromBase.StringFixed(1)))

			// Balance difference
			if !alt.BalanceDiffFromBase.IsZero() {
				balanceSymbol := tf.deltaSymbol(alt.BalanceDiffFromBase)
				sb.WriteString(fmt.Sprintf("  Year-End Balance: %s$%s\n",
					balanceSymbol,
					alt.BalanceDiffFromBase.Abs().StringFixed(0)))
			}

			// Effective rate shift
			if !alt.EffectiveRate.Equal(base.EffectiveRate) {
				sb.WriteString(fmt.Sprintf("  Effective Rate:   %s%% vs %s%%\n",
					alt.EffectiveRate.StringFixed(1),
					base.EffectiveRate.StringFixed(1)))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single variant row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.VariantName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatMoney(result.TaxableIncome),
		numWidth, tf.formatMoney(result.TaxLiability),
		numWidth, tf.formatMoney(result.TotalWithheld),
		numWidth, tf.formatOutcome(result))
}

// formatOutcome renders the balance the way the filer experiences it
func (tf *TableFormatter) formatOutcome(result *ComparisonResult) string {
	switch {
	case result.Balance.IsNegative():
		return tf.formatMoney(result.Balance.Neg()) + " refund"
	case result.Balance.IsPositive():
		return tf.formatMoney(result.Balance) + " due"
	default:
		return "break even"
	}
}

// formatMoney renders whole dollars with the sign ahead of the symbol
func (tf *TableFormatter) formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(0)
	}
	return "$" + d.StringFixed(0)
}

// deltaSymbol returns the sign prefix for a delta
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each variant
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseVariantName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		liabilityChange := "="
		if alt.LiabilityDiffFromBase.IsPositive() {
			liabilityChange = fmt.Sprintf("+$%s", alt.LiabilityDiffFromBase.StringFixed(0))
		} else if alt.LiabilityDiffFromBase.IsNegative() {
			liabilityChange = fmt.Sprintf("-$%s", alt.LiabilityDiffFromBase.Abs().StringFixed(0))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.VariantName, liabilityChange))
	}

	return sb.String()
}
