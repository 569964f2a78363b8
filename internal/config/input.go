package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"taxcast/internal/domain"
)

// InputParser handles parsing of filing input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a filing from a YAML or JSON file. Entries come back
// with identifiers assigned and the filing status normalized to its
// canonical form.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Filing, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var filing domain.Filing
	if err := yaml.Unmarshal(data, &filing); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	AssignEntryIDs(&filing)

	if err := ip.ValidateFiling(&filing); err != nil {
		return nil, fmt.Errorf("filing validation failed: %w", err)
	}

	return &filing, nil
}

// AssignEntryIDs gives every entry without an identifier a fresh one, so
// validation failures and reports can always name the entry.
func AssignEntryIDs(filing *domain.Filing) {
	for i := range filing.W2s {
		if filing.W2s[i].ID == "" {
			filing.W2s[i].ID = uuid.NewString()
		}
	}
	for i := range filing.Paystubs {
		if filing.Paystubs[i].ID == "" {
			filing.Paystubs[i].ID = uuid.NewString()
		}
	}
}

// ValidateFiling validates the loaded filing. The filing status is
// normalized in place; entry-level defects surface as
// *domain.InvalidEntryError so callers can name the offending record.
func (ip *InputParser) ValidateFiling(filing *domain.Filing) error {
	if filing.TaxYear == 0 {
		return fmt.Errorf("tax_year is required")
	}
	if filing.TaxYear < 2000 || filing.TaxYear > 2100 {
		return fmt.Errorf("tax_year %d is out of range (2000-2100)", filing.TaxYear)
	}

	status, err := domain.ParseFilingStatus(string(filing.FilingStatus))
	if err != nil {
		return err
	}
	filing.FilingStatus = status

	if len(filing.W2s) == 0 && len(filing.Paystubs) == 0 {
		return fmt.Errorf("at least one w2 or paystub entry is required")
	}

	for i := range filing.W2s {
		if err := ip.validateW2(&filing.W2s[i]); err != nil {
			return fmt.Errorf("w2 entry %d: %w", i, err)
		}
	}
	for i := range filing.Paystubs {
		if err := ip.validatePaystub(&filing.Paystubs[i]); err != nil {
			return fmt.Errorf("paystub entry %d: %w", i, err)
		}
	}

	return nil
}

// Warnings reports non-fatal oddities in a filing: figures that parse and
// compute fine but usually mean the wrong file or year was supplied. An
// empty slice means nothing looked off.
func (ip *InputParser) Warnings(filing *domain.Filing) []string {
	var warnings []string
	for i, stub := range filing.Paystubs {
		if stub.PayDate != nil && stub.PayDate.Year() != filing.TaxYear {
			warnings = append(warnings, fmt.Sprintf(
				"paystub entry %d: pay date %s falls outside tax year %d",
				i, stub.PayDate.Format("2006-01-02"), filing.TaxYear))
		}
	}
	return warnings
}

// validateW2 validates a single annual wage summary
func (ip *InputParser) validateW2(entry *domain.W2Entry) error {
	if entry.Wages.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "wages cannot be negative")
	}
	if entry.Withheld.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "withheld cannot be negative")
	}
	if entry.SocialSecurityWages != nil && entry.SocialSecurityWages.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "social security wages cannot be negative")
	}
	if entry.MedicareWages != nil && entry.MedicareWages.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "medicare wages cannot be negative")
	}
	return nil
}

// validatePaystub validates a single paycheck record
func (ip *InputParser) validatePaystub(entry *domain.PaystubEntry) error {
	if !entry.Usable() {
		return domain.NewInvalidEntryError(entry.ID,
			"needs at least one wage figure and one withholding figure")
	}

	if entry.YTDWages != nil && entry.YTDWages.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "ytd_wages cannot be negative")
	}
	if entry.YTDWithheld != nil && entry.YTDWithheld.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "ytd_withheld cannot be negative")
	}
	if entry.PeriodWages != nil && entry.PeriodWages.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "period_wages cannot be negative")
	}
	if entry.PeriodWithheld != nil && entry.PeriodWithheld.IsNegative() {
		return domain.NewInvalidEntryError(entry.ID, "period_withheld cannot be negative")
	}

	if entry.Frequency != "" && !entry.Frequency.Valid() {
		return domain.NewInvalidEntryError(entry.ID,
			fmt.Sprintf("unknown pay frequency %q", entry.Frequency))
	}

	return nil
}
