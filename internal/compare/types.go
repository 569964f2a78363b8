package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"taxcast/internal/domain"
)

// ComparisonResult holds the results of estimating one filing variant,
// optionally measured against a base variant.
type ComparisonResult struct {
	VariantName string `json:"variantName"`
	Description string `json:"description,omitempty"`

	TaxYear      int                 `json:"taxYear"`
	FilingStatus domain.FilingStatus `json:"filingStatus"`

	// Key Metrics
	TotalWages    decimal.Decimal `json:"totalWages"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	TaxLiability  decimal.Decimal `json:"taxLiability"`
	TotalWithheld decimal.Decimal `json:"totalWithheld"`
	Balance       decimal.Decimal `json:"balance"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	MarginalRate  decimal.Decimal `json:"marginalRate"`

	// Comparison to Base
	LiabilityDiffFromBase decimal.Decimal `json:"liabilityDiffFromBase"`
	LiabilityPctFromBase  decimal.Decimal `json:"liabilityPctFromBase"`
	BalanceDiffFromBase   decimal.Decimal `json:"balanceDiffFromBase"`

	// Full estimate for detailed output
	Estimate *domain.Estimate `json:"estimate,omitempty"`
}

// ComparisonSet represents a collection of filing variant comparisons
type ComparisonSet struct {
	BaseVariantName    string             `json:"baseVariantName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath,omitempty"`
}

// MetricsCalculator extracts key metrics from estimates
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for an estimate. The
// effective rate is liability over total wages; the marginal rate is the
// rate of the highest band the taxable income reached.
func (mc *MetricsCalculator) CalculateMetrics(est *domain.Estimate, variantName string) ComparisonResult {
	result := ComparisonResult{
		VariantName:   variantName,
		TaxYear:       est.TaxYear,
		FilingStatus:  est.FilingStatus,
		TotalWages:    est.TotalWages,
		TaxableIncome: est.TaxableIncome,
		TaxLiability:  est.TaxLiability,
		TotalWithheld: est.TotalWithheld,
		Balance:       est.Balance,
		Estimate:      est,
	}

	if est.TotalWages.IsPositive() {
		result.EffectiveRate = est.TaxLiability.
			Div(est.TotalWages).
			Mul(decimal.NewFromInt(100))
	}

	if n := len(est.Brackets); n > 0 {
		result.MarginalRate = est.Brackets[n-1].Rate.Mul(decimal.NewFromInt(100))
	}

	return result
}

// CalculateComparison computes comparison metrics between a variant and a base
func (mc *MetricsCalculator) CalculateComparison(variant, base ComparisonResult) ComparisonResult {
	variant.LiabilityDiffFromBase = variant.TaxLiability.Sub(base.TaxLiability)

	if !base.TaxLiability.IsZero() {
		variant.LiabilityPctFromBase = variant.LiabilityDiffFromBase.
			Div(base.TaxLiability).
			Mul(decimal.NewFromInt(100))
	}

	variant.BalanceDiffFromBase = variant.Balance.Sub(base.Balance)

	return variant
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find the largest liability reduction
	var lowestTax *ComparisonResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.LiabilityDiffFromBase.IsNegative() {
			continue
		}
		if lowestTax == nil || alt.LiabilityDiffFromBase.LessThan(lowestTax.LiabilityDiffFromBase) {
			lowestTax = alt
		}
	}

	if lowestTax != nil {
		recommendations = append(recommendations,
			"Lowest Tax: "+lowestTax.VariantName+" cuts the estimated liability by $"+
				lowestTax.LiabilityDiffFromBase.Abs().StringFixed(0)+
				fmt.Sprintf(" (%s%%)", lowestTax.LiabilityPctFromBase.Abs().StringFixed(1)))
	}

	// Find a variant that turns an amount due into a refund
	if compSet.BaseResult.Balance.IsPositive() {
		var bestFlip *ComparisonResult
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if !alt.Balance.IsNegative() {
				continue
			}
			if bestFlip == nil || alt.Balance.LessThan(bestFlip.Balance) {
				bestFlip = alt
			}
		}

		if bestFlip != nil {
			recommendations = append(recommendations,
				"Refund: "+bestFlip.VariantName+" turns a $"+
					compSet.BaseResult.Balance.StringFixed(0)+" amount due into a $"+
					bestFlip.Balance.Abs().StringFixed(0)+" refund")
		}
	}

	return recommendations
}
