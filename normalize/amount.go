package normalize

import (
	"github.com/ava-labs/ava-explorer/explorer"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DecodeAmount converts a string-encoded base-unit amount into an exact
// decimal scaled by the asset's denomination. "0" is a valid amount (NFTs and
// marker outputs). Floating point is never involved; precision loss here
// would corrupt every downstream total.
func DecodeAmount(raw string, denomination int32) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Zero, errors.Wrap(ErrMalformedRecord, "empty amount")
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return decimal.Zero, errors.Wrapf(ErrMalformedRecord, "amount %q is not an unsigned integer", raw)
		}
	}
	if denomination < 0 {
		return decimal.Zero, errors.Wrapf(ErrMalformedRecord, "negative denomination %d", denomination)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrMalformedRecord, "amount %q: %v", raw, err)
	}
	return d.Shift(-denomination), nil
}

// EncodeAmount is the inverse of DecodeAmount: back to the base-unit integer
// string
func EncodeAmount(amount decimal.Decimal, denomination int32) string {
	return amount.Shift(denomination).String()
}

// Aggregate sums output amounts per asset id. The denomination function
// provides the decimal exponent for each asset. Assets without outputs are
// absent from the result, there is no zero-filling.
func Aggregate(outs []*explorer.Output, denomination func(assetID string) int32) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, out := range outs {
		amount, err := DecodeAmount(out.Amount, denomination(out.AssetID))
		if err != nil {
			return nil, errors.WithMessagef(err, "output %s", out.ID)
		}
		if total, ok := totals[out.AssetID]; ok {
			totals[out.AssetID] = total.Add(amount)
		} else {
			totals[out.AssetID] = amount
		}
	}
	return totals, nil
}
