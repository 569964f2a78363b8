package output

import (
	"bytes"
	"fmt"
	"strings"

	"taxcast/internal/domain"
)

// ConsoleFormatter renders the detailed plain-text report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(est *domain.Estimate) ([]byte, error) {
	var buf bytes.Buffer

	title := fmt.Sprintf("FEDERAL TAX ESTIMATE: %d (%s)", est.TaxYear, est.FilingStatus.Label())
	rule := strings.Repeat("=", len(title))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME")
	fmt.Fprintf(&buf, "  Total Wages:         %s\n", FormatCurrency(est.TotalWages))
	fmt.Fprintf(&buf, "  Total Withheld:      %s\n", FormatCurrency(est.TotalWithheld))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAXABLE INCOME")
	fmt.Fprintf(&buf, "  Standard Deduction:  %s\n", FormatCurrency(est.StandardDeduction))
	fmt.Fprintf(&buf, "  Taxable Income:      %s\n", FormatCurrency(est.TaxableIncome))
	fmt.Fprintln(&buf)

	if len(est.Brackets) > 0 {
		fmt.Fprintln(&buf, "BRACKET BREAKDOWN")
		for _, b := range est.Brackets {
			span := fmt.Sprintf("%s and up", FormatCurrency(b.Lower))
			if b.Upper != nil {
				span = fmt.Sprintf("%s to %s", FormatCurrency(b.Lower), FormatCurrency(*b.Upper))
			}
			fmt.Fprintf(&buf, "  %s on %s (%s): %s\n",
				FormatRate(b.Rate), FormatCurrency(b.Income), span, FormatCurrency(b.Tax))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "OUTCOME")
	fmt.Fprintf(&buf, "  Tax Liability:       %s\n", FormatCurrency(est.TaxLiability))
	fmt.Fprintf(&buf, "  Total Withheld:      %s\n", FormatCurrency(est.TotalWithheld))
	if est.IsRefund {
		fmt.Fprintf(&buf, "  ESTIMATED REFUND:    %s\n", FormatCurrency(est.RefundAmount))
	} else {
		fmt.Fprintf(&buf, "  ESTIMATED AMOUNT DUE: %s\n", FormatCurrency(est.AmountDue))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Calculated at %s\n", est.CalculatedAt.Format("2006-01-02 15:04:05"))

	return buf.Bytes(), nil
}
