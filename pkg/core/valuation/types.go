// Package valuation implements a two-stage discounted cash flow (DCF)
// valuation: a 10-year explicit forecast of free cash flow plus a Gordon
// growth terminal value, reduced to an intrinsic value per share and
// classified against the current market price.
//
// All arithmetic runs on shopspring decimals. Floats never enter the
// calculation; rounding happens once, at the final per-share step.
package valuation

import "github.com/shopspring/decimal"

// The wire contract carries intrinsicValue as a JSON number, not a quoted
// string (shopspring's default).
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ValuationInput holds the seven caller-supplied assumptions. Fields are
// pointers so an absent JSON field is distinguishable from an explicit zero.
//
// Unit convention: monetary aggregates (FCFLastYear, NetDebt) are in
// billions, SharesOutstanding in millions, CurrentMarketPrice in currency
// units per share. Rates are fractions (0.15 = 15%).
type ValuationInput struct {
	FCFLastYear        *decimal.Decimal `json:"fcfLastYear"`
	GrowthRate         *decimal.Decimal `json:"growthRate"`
	DiscountRate       *decimal.Decimal `json:"discountRate"`
	TerminalGrowthRate *decimal.Decimal `json:"terminalGrowthRate"`
	SharesOutstanding  *decimal.Decimal `json:"sharesOutstanding"`
	NetDebt            *decimal.Decimal `json:"netDebt"`
	CurrentMarketPrice *decimal.Decimal `json:"currentMarketPrice"`
}

// ValidatedInput is the dereferenced, checked value set the DCF consumes.
// Only Validate constructs one.
type ValidatedInput struct {
	FCFLastYear        decimal.Decimal
	GrowthRate         decimal.Decimal
	DiscountRate       decimal.Decimal
	TerminalGrowthRate decimal.Decimal
	SharesOutstanding  decimal.Decimal
	NetDebt            decimal.Decimal
	CurrentMarketPrice decimal.Decimal
}

// Remark classifies the intrinsic value against the current market price.
type Remark string

const (
	RemarkUndervalued  Remark = "Undervalued"
	RemarkOvervalued   Remark = "Overvalued"
	RemarkFairlyValued Remark = "FairlyValued"
)

// ValuationResult holds the valuation outputs.
type ValuationResult struct {
	IntrinsicValue decimal.Decimal `json:"intrinsicValue"`
	Currency       string          `json:"currency"`
	Remark         Remark          `json:"remarks"`
}
