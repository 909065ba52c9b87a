// Package core holds the finance entities shared by the client, the mock API
// and the exporters, plus the money and date value types they are built on.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a single-currency amount held at cent precision.
//
// On the wire it is a plain JSON number ("amount": 12.5). Decoding accepts
// numbers and quoted numbers and rounds half-up to two decimals, so values
// computed by the server with more precision still compare exactly.
type Money struct {
	d decimal.Decimal
}

// NewMoney rounds d to cents.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d.Round(2)}
}

// MoneyFromCents builds an amount from an integer number of cents.
func MoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

// ParseMoney converts user input to Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds the third decimal half-up. Negative values are rejected.
//
// Examples:
//
//	ParseMoney("12.34")  -> 12.34
//	ParseMoney("12,345") -> 12.35
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return NewMoney(d), nil
}

func (m Money) Decimal() decimal.Decimal { return m.d }

// Cents returns the amount as an integer count of cents.
func (m Money) Cents() int64 {
	return m.d.Shift(2).Round(0).IntPart()
}

func (m Money) Add(o Money) Money { return Money{d: m.d.Add(o.d)} }

func (m Money) Sub(o Money) Money { return Money{d: m.d.Sub(o.d)} }

func (m Money) Neg() Money { return Money{d: m.d.Neg()} }

func (m Money) IsZero() bool { return m.d.IsZero() }

func (m Money) IsNegative() bool { return m.d.IsNegative() }

func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

// Percent returns m as a percentage of total, 0 when total is zero.
func (m Money) Percent(total Money) float64 {
	if total.d.IsZero() {
		return 0
	}
	f, _ := m.d.Div(total.d).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// String renders the amount with exactly two decimals, without currency symbol.
func (m Money) String() string {
	return m.d.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return ErrInvalidAmount
	}
	m.d = d.Round(2)
	return nil
}

// Sum adds up a list of amounts.
func Sum(amounts ...Money) Money {
	total := Money{}
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
