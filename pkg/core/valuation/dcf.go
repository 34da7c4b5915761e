package valuation

import "github.com/shopspring/decimal"

// forecastYears is the explicit projection horizon.
const forecastYears = 10

// Currency is the fixed reporting currency label on every result.
const Currency = "USD"

var (
	one = decimal.NewFromInt(1)

	// monetaryToShareScale converts monetary aggregates (billions) over the
	// share count (millions) into currency units per share.
	monetaryToShareScale = decimal.NewFromInt(1000)
)

// ComputeIntrinsicValue performs a standard 2-stage DCF on a validated input
// and classifies the per-share result against the current market price.
//
// It is a pure function: no state, no I/O, safe for any number of concurrent
// callers.
func ComputeIntrinsicValue(in *ValidatedInput) ValuationResult {
	onePlusGrowth := one.Add(in.GrowthRate)
	onePlusDiscount := one.Add(in.DiscountRate)

	// 1. Explicit forecast: discrete per-period compounding.
	// cf_t = cf_{t-1} * (1+g), discounted by (1+r)^t. Each period is
	// computed independently rather than via a growing-annuity closed form,
	// which stops being valid when g exceeds r during the forecast window.
	pvFCF := decimal.Zero
	cf := in.FCFLastYear
	discountFactor := one
	for t := 0; t < forecastYears; t++ {
		cf = cf.Mul(onePlusGrowth)
		discountFactor = discountFactor.Mul(onePlusDiscount)
		pvFCF = pvFCF.Add(cf.Div(discountFactor))
	}

	// 2. Terminal Value (Gordon Growth)
	// TV = cf_10 * (1+g_term) / (r - g_term), discounted by (1+r)^10.
	// Validate has already rejected r == g_term; r < g_term yields a
	// negative TV, which is a legitimate output of the model.
	tv := cf.Mul(one.Add(in.TerminalGrowthRate)).
		Div(in.DiscountRate.Sub(in.TerminalGrowthRate))
	pvTerminal := tv.Div(discountFactor)

	// 3. Aggregation
	enterpriseValue := pvFCF.Add(pvTerminal)
	equityValue := enterpriseValue.Sub(in.NetDebt)

	// 4. Per share. The only rounding in the whole calculation: 2dp,
	// half-up (decimal.Round rounds half away from zero).
	intrinsicValue := equityValue.Mul(monetaryToShareScale).
		Div(in.SharesOutstanding).
		Round(2)

	return ValuationResult{
		IntrinsicValue: intrinsicValue,
		Currency:       Currency,
		Remark:         classify(intrinsicValue, in.CurrentMarketPrice),
	}
}

// classify compares the rounded intrinsic value against the market price.
// Exact equality is the sole FairlyValued boundary; no tolerance band.
func classify(intrinsicValue, marketPrice decimal.Decimal) Remark {
	switch intrinsicValue.Cmp(marketPrice) {
	case 1:
		return RemarkUndervalued
	case -1:
		return RemarkOvervalued
	default:
		return RemarkFairlyValued
	}
}

// Calculate validates the input and runs the DCF, failing fast on the first
// validation error.
func Calculate(input *ValuationInput) (*ValuationResult, error) {
	validated, err := Validate(input)
	if err != nil {
		return nil, err
	}
	result := ComputeIntrinsicValue(validated)
	return &result, nil
}
