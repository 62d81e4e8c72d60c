package purchase

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Money is a non-negative EUR amount with at most two fraction digits.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() || !amount.Equal(amount.Round(2)) {
		return Money{}, ErrInvalidPrice
	}
	return Money{amount: amount}, nil
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidPrice
	}
	return NewMoney(d)
}

func (m Money) Amount() decimal.Decimal { return m.amount }

// MinorUnits converts to cents, rounding half away from zero.
func (m Money) MinorUnits() int64 {
	return m.amount.Mul(hundred).Round(0).IntPart()
}

func (m Money) Equal(o Money) bool { return m.amount.Equal(o.amount) }

func (m Money) String() string { return m.amount.StringFixed(2) }
