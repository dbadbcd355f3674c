package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a two-decimal fixed-point amount. All arithmetic stays exact;
// the only rounding point is MulOdds, applied once when a payout is computed.
type Money struct {
	d decimal.Decimal
}

var Zero = Money{d: decimal.Zero}

// FromString parses a two-decimal amount like "10.50".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return Zero, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return Money{d: d}, nil
}

// MustFromString is FromString for literals in tests and defaults.
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func FromDecimal(d decimal.Decimal) Money {
	return Money{d: d}
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }
func (m Money) Neg() Money        { return Money{d: m.d.Neg()} }

// MulOdds computes m multiplied by a decimal odds factor, rounded half-up to
// the nearest cent. Callers must store the result rather than re-deriving it.
func (m Money) MulOdds(odds decimal.Decimal) Money {
	return Money{d: m.d.Mul(odds).Round(2)}
}

func (m Money) Cmp(o Money) int          { return m.d.Cmp(o.d) }
func (m Money) Equal(o Money) bool       { return m.d.Equal(o.d) }
func (m Money) LessThan(o Money) bool    { return m.d.LessThan(o.d) }
func (m Money) GreaterThan(o Money) bool { return m.d.GreaterThan(o.d) }
func (m Money) IsPositive() bool         { return m.d.IsPositive() }
func (m Money) IsNegative() bool         { return m.d.IsNegative() }
func (m Money) IsZero() bool             { return m.d.IsZero() }
func (m Money) Decimal() decimal.Decimal { return m.d }

// Scan and Value delegate to shopspring/decimal so Money can be used
// directly as a query argument and scan target.
func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	m.d = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.d.Value()
}

// String formats with exactly two decimal places.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
