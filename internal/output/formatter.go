package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// Formatter renders one estimate as a byte stream for a given medium.
type Formatter interface {
	Format(est *domain.Estimate) ([]byte, error)
	Name() string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(est *domain.Estimate) ([]byte, error)
}

func (ff FormatterFunc) Name() string { return ff.ID }

func (ff FormatterFunc) Format(est *domain.Estimate) ([]byte, error) {
	return ff.F(est)
}

// GetFormatterByName returns the formatter registered under name, or nil
// when the name is unknown. The empty string selects the console formatter.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate renders a fractional rate (0.10) as a percentage (10.00%).
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimal.NewFromInt(100)))
}
