package core

import (
	"encoding/json"
	"testing"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"1234567.89", 123456789, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.ok {
			if err != nil || got.Cents() != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents(), err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	var m Money
	for in, want := range map[string]int64{
		`12.5`:    1250,
		`"12.50"`: 1250,
		`0.1`:     10,
		`99.999`:  10000,
	} {
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if m.Cents() != want {
			t.Fatalf("unmarshal %s: got %d cents, want %d", in, m.Cents(), want)
		}
	}

	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}

	b, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{MoneyFromCents(123456)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"amount":1234.56}` {
		t.Fatalf("marshal got %s", b)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := MoneyFromCents(1050)
	b := MoneyFromCents(250)

	if got := a.Add(b).Cents(); got != 1300 {
		t.Errorf("Add = %d, want 1300", got)
	}
	if got := b.Sub(a); !got.IsNegative() || got.Cents() != -800 {
		t.Errorf("Sub = %d, want -800", got.Cents())
	}
	if got := Sum(a, b, b).Cents(); got != 1550 {
		t.Errorf("Sum = %d, want 1550", got)
	}
	if got := b.Percent(MoneyFromCents(1000)); got != 25 {
		t.Errorf("Percent = %v, want 25", got)
	}
	if got := a.Percent(Money{}); got != 0 {
		t.Errorf("Percent of zero total = %v, want 0", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-1200, "-$12.00"},
		{99999, "$999.99"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(MoneyFromCents(tc.cents)); got != tc.want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
