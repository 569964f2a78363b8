package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeTotals is the reduction of every income record to a single pair of
// whole-dollar figures. Each aggregation call produces a fresh value; nothing
// mutates one after the fact.
type IncomeTotals struct {
	Wages    decimal.Decimal `json:"wages"`
	Withheld decimal.Decimal `json:"withheld"`
}

// BracketTax is one reported line of the liability breakdown: how much income
// landed in a band and the tax that band charged. Upper is nil for the final
// unbounded band. Bands that received no income are not reported.
type BracketTax struct {
	Rate   decimal.Decimal  `json:"rate"`
	Lower  decimal.Decimal  `json:"lower"`
	Upper  *decimal.Decimal `json:"upper,omitempty"`
	Income decimal.Decimal  `json:"income"`
	Tax    decimal.Decimal  `json:"tax"`
}

// Estimate is the outcome of one liability calculation. It is immutable:
// recomputing with edited inputs yields a new Estimate rather than changing
// this one. All currency figures are rounded to whole dollars.
type Estimate struct {
	TaxYear      int          `json:"taxYear"`
	FilingStatus FilingStatus `json:"filingStatus"`

	TotalWages        decimal.Decimal `json:"totalWages"`
	TotalWithheld     decimal.Decimal `json:"totalWithheld"`
	StandardDeduction decimal.Decimal `json:"standardDeduction"`
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	TaxLiability      decimal.Decimal `json:"taxLiability"`

	// Balance is liability minus withholding: positive means amount owed,
	// negative means refund. RefundAmount and AmountDue are the two halves
	// split out for display, always non-negative, at most one nonzero.
	Balance      decimal.Decimal `json:"balance"`
	IsRefund     bool            `json:"isRefund"`
	RefundAmount decimal.Decimal `json:"refundAmount"`
	AmountDue    decimal.Decimal `json:"amountDue"`

	Brackets     []BracketTax `json:"brackets"`
	CalculatedAt time.Time    `json:"calculatedAt"`
}
