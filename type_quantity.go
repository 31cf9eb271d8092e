package stockbook

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Quantity is a number of units of a product. Stock is counted in whole units.
type Quantity uint64

// ParseQuantity parses a decimal integer into a Quantity.
// Negative values are reported as ErrInvalidQuantity, anything that is not
// an integer is a plain parse error.
func ParseQuantity(s string) (Quantity, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: not an integer", s)
	}
	if v < 0 {
		return 0, &FieldError{Field: "quantity", Value: s, Err: ErrInvalidQuantity}
	}
	return Quantity(v), nil
}

func (q Quantity) IsZero() bool                { return q == 0 }
func (q Quantity) Add(p Quantity) Quantity      { return q + p }
func (q Quantity) GreaterThan(p Quantity) bool { return q > p }
func (q Quantity) String() string              { return strconv.FormatUint(uint64(q), 10) }

// Decimal returns the quantity as an exact decimal, for money arithmetic.
func (q Quantity) Decimal() decimal.Decimal { return decimal.NewFromUint64(uint64(q)) }

// Sub returns q-p. It panics if the result would be negative: callers must
// have checked the stock first.
func (q Quantity) Sub(p Quantity) Quantity {
	if p > q {
		panic(fmt.Sprintf("quantity underflow: %d - %d", q, p))
	}
	return q - p
}
