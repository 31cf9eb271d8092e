package stockbook

import (
	"fmt"
	"reflect"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money is an exact monetary amount. It carries no currency: the ledger is
// kept in a single currency, and the currency is a display concern only.
type Money struct {
	value decimal.Decimal
}

// M creates Money from a number.
func M[T float64 | int | int64 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string like "12.50" into Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: not a number", s)
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money                  { return Money{value: m.value.Neg()} }
func (m Money) Mul(q Quantity) Money        { return Money{value: m.value.Mul(q.Decimal())} }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) InexactFloat64() float64     { return m.value.InexactFloat64() }
func (m Money) Round(places int32) Money    { return Money{value: m.value.Round(places)} }
func (m Money) String() string              { return m.value.String() }
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// Div returns m/q. Dividing by zero units yields zero.
func (m Money) Div(q Quantity) Money {
	if q.IsZero() {
		return Money{}
	}
	return Money{value: m.value.Div(q.Decimal())}
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}

// Display formats the amount in the given ISO 4217 currency, using the
// currency's symbol and minor units. An empty or unknown currency falls back
// to the plain decimal representation.
func (m Money) Display(currency string) string {
	if currency == "" {
		return m.String()
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.String()
	}
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// ValidateCurrency checks that code is a currency known to the formatter.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// moneyValue exposes Money to the validator as a float64, so that numeric
// tags (gte, gt) apply to it. The sign is all the tags look at, and the
// conversion preserves it.
func moneyValue(v reflect.Value) any {
	if m, ok := v.Interface().(Money); ok {
		return m.InexactFloat64()
	}
	return nil
}
