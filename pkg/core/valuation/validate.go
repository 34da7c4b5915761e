package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate checks the input record and returns the dereferenced value set
// the DCF consumes. It fails on the first problem found; no arithmetic runs
// against a partially populated input.
//
// Only presence, positive share count, and the degenerate rate pair are
// enforced here. Sign is deliberately unchecked everywhere else: a negative
// growth rate models contraction, a negative net debt models a net cash
// position, and both must flow into the arithmetic unchanged.
func Validate(input *ValuationInput) (*ValidatedInput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	fields := []struct {
		name string
		val  *decimal.Decimal
	}{
		{"fcfLastYear", input.FCFLastYear},
		{"growthRate", input.GrowthRate},
		{"discountRate", input.DiscountRate},
		{"terminalGrowthRate", input.TerminalGrowthRate},
		{"sharesOutstanding", input.SharesOutstanding},
		{"netDebt", input.NetDebt},
		{"currentMarketPrice", input.CurrentMarketPrice},
	}
	for _, f := range fields {
		if f.val == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if !input.SharesOutstanding.IsPositive() {
		return nil, ErrNonPositiveShares
	}

	// Exact decimal equality, no tolerance: a tied rate pair makes the
	// Gordon denominator zero and the terminal value undefined.
	if input.DiscountRate.Equal(*input.TerminalGrowthRate) {
		return nil, ErrDegenerateRate
	}

	return &ValidatedInput{
		FCFLastYear:        *input.FCFLastYear,
		GrowthRate:         *input.GrowthRate,
		DiscountRate:       *input.DiscountRate,
		TerminalGrowthRate: *input.TerminalGrowthRate,
		SharesOutstanding:  *input.SharesOutstanding,
		NetDebt:            *input.NetDebt,
		CurrentMarketPrice: *input.CurrentMarketPrice,
	}, nil
}
