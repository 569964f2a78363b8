package compare

import (
	"fmt"
	"strconv"
	"strings"

	"taxcast/internal/calculation"
	"taxcast/internal/domain"
)

// CompareEngine estimates one filing under alternative filing statuses and
// tax years and measures the alternatives against the base
type CompareEngine struct {
	Estimator         *calculation.Estimator
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(estimator *calculation.Estimator) *CompareEngine {
	return &CompareEngine{
		Estimator:         estimator,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Variant is one alternative treatment of a filing: the same income entries
// estimated under a different filing status, a different tax year, or both.
type Variant struct {
	Status domain.FilingStatus
	Year   int
}

// Name is the label a variant carries through tables and recommendations.
func (v Variant) Name() string {
	return fmt.Sprintf("%s %d", v.Status, v.Year)
}

// ParseVariant interprets specs like "mfj", "2024" or "mfj,2024". Parts may
// appear in either order; whatever the spec leaves out is taken from the
// filing itself.
func ParseVariant(spec string, filing *domain.Filing) (Variant, error) {
	v := Variant{Status: filing.FilingStatus, Year: filing.TaxYear}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if year, err := strconv.Atoi(part); err == nil {
			v.Year = year
			continue
		}

		status, err := domain.ParseFilingStatus(part)
		if err != nil {
			return Variant{}, fmt.Errorf("variant %q: %w", spec, err)
		}
		v.Status = status
	}

	return v, nil
}

// Compare estimates the filing as given, then re-estimates it under each
// variant spec
func (ce *CompareEngine) Compare(filing *domain.Filing, variantSpecs []string) (*ComparisonSet, error) {
	if filing == nil {
		return nil, fmt.Errorf("filing is required")
	}

	baseEstimate, err := ce.Estimator.Estimate(filing)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate base filing: %w", err)
	}

	baseVariant := Variant{Status: filing.FilingStatus, Year: filing.TaxYear}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseEstimate, baseVariant.Name())

	// Estimate each alternative variant
	alternatives := []ComparisonResult{}

	for _, spec := range variantSpecs {
		variant, err := ParseVariant(spec, filing)
		if err != nil {
			return nil, err
		}

		// Same entries, substituted status and year. The entry slices are
		// shared; nothing downstream mutates them.
		altFiling := *filing
		altFiling.FilingStatus = variant.Status
		altFiling.TaxYear = variant.Year

		altEstimate, err := ce.Estimator.Estimate(&altFiling)
		if err != nil {
			return nil, fmt.Errorf("failed to estimate variant %s: %w", variant.Name(), err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altEstimate, variant.Name())
		altResult.Description = fmt.Sprintf("%s under the %d schedule", variant.Status.Label(), variant.Year)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)

		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseVariantName:    baseVariant.Name(),
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}

	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
