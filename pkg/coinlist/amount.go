package coinlist

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal quantity or price. It marshals as a bare JSON number
// ({"size":1}) and unmarshals from either a number or a quoted string,
// which is how the exchange reports balances and prices.
type Amount struct {
	decimal.Decimal
}

func AmountFromInt(v int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(v)}
}

func AmountFromFloat(v float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(v)}
}

// ParseAmount parses a decimal string such as "0.015".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Decimal: d}, nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(data)
}
