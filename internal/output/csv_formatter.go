package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"taxcast/internal/domain"
)

// CSVFormatter implements the single-row summary CSV output.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(est *domain.Estimate) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"TaxYear", "FilingStatus", "TotalWages", "TotalWithheld", "StandardDeduction",
		"TaxableIncome", "TaxLiability", "Balance", "RefundAmount", "AmountDue",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		strconv.Itoa(est.TaxYear),
		est.FilingStatus.String(),
		est.TotalWages.StringFixed(2),
		est.TotalWithheld.StringFixed(2),
		est.StandardDeduction.StringFixed(2),
		est.TaxableIncome.StringFixed(2),
		est.TaxLiability.StringFixed(2),
		est.Balance.StringFixed(2),
		est.RefundAmount.StringFixed(2),
		est.AmountDue.StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
