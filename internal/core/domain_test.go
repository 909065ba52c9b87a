package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-03-04"`), &d); err != nil {
		t.Fatalf("unmarshal date: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 4 {
		t.Fatalf("unexpected date %v", d)
	}
	b, _ := json.Marshal(d)
	if string(b) != `"2025-03-04"` {
		t.Fatalf("marshal date got %s", b)
	}

	if err := json.Unmarshal([]byte(`"2025-03-04T10:20:30Z"`), &d); err != nil {
		t.Fatalf("unmarshal timestamp: %v", err)
	}
	b, _ = json.Marshal(d)
	if string(b) != `"2025-03-04T10:20:30Z"` {
		t.Fatalf("marshal timestamp got %s", b)
	}

	if err := json.Unmarshal([]byte(`null`), &d); err != nil || !d.IsZero() {
		t.Fatalf("null should decode to zero date, got %v (err=%v)", d, err)
	}
	if err := json.Unmarshal([]byte(`"04/03/2025"`), &d); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}

func TestBudgetSpentDefaultsToZero(t *testing.T) {
	var b Budget
	if err := json.Unmarshal([]byte(`{"id":"b1","category":"Food","amount":200,"period":"monthly"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !b.Spent.IsZero() {
		t.Fatalf("expected zero spent, got %s", b.Spent)
	}
	if b.Amount.Cents() != 20000 || b.Period != Monthly {
		t.Fatalf("unexpected budget %+v", b)
	}
}

func TestCredentialsValidate(t *testing.T) {
	if err := (Credentials{Email: "a@b.c", Password: "x"}).ValidateLogin(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Credentials{Email: " ", Password: "x"}).ValidateLogin(); !errors.Is(err, ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
	if err := (Credentials{Email: "a@b.c"}).ValidateLogin(); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
	if err := (Credentials{Email: "a@b.c", Password: "x"}).ValidateRegister(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestTransactionPayloadValidate(t *testing.T) {
	good := TransactionPayload{
		Type:        Expense,
		Category:    "Food",
		Amount:      MoneyFromCents(1250),
		Description: "Groceries",
		Date:        NewDate(2025, 1, 15),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*TransactionPayload)
		want   error
	}{
		{"missing type", func(p *TransactionPayload) { p.Type = "" }, ErrEmptyType},
		{"missing category", func(p *TransactionPayload) { p.Category = "" }, ErrEmptyCategory},
		{"missing amount", func(p *TransactionPayload) { p.Amount = Money{} }, ErrInvalidAmount},
		{"missing description", func(p *TransactionPayload) { p.Description = "  " }, ErrEmptyDescription},
		{"missing date", func(p *TransactionPayload) { p.Date = Date{} }, ErrEmptyDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := good
			tc.mutate(&p)
			if err := p.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestOtherPayloadsValidate(t *testing.T) {
	cases := []struct {
		name string
		p    interface{ Validate() error }
		ok   bool
	}{
		{"budget ok", BudgetPayload{Category: "Food", Amount: MoneyFromCents(100), Period: Monthly}, true},
		{"budget no period", BudgetPayload{Category: "Food", Amount: MoneyFromCents(100)}, false},
		{"goal ok", GoalPayload{Name: "Car", TargetAmount: MoneyFromCents(100), TargetDate: NewDate(2026, 1, 1)}, true},
		{"goal no date", GoalPayload{Name: "Car", TargetAmount: MoneyFromCents(100)}, false},
		{"save ok", SavePayload{Amount: MoneyFromCents(1)}, true},
		{"save zero", SavePayload{}, false},
		{"bill ok", BillPayload{Name: "Rent", Amount: MoneyFromCents(100), DueDate: NewDate(2025, 2, 1)}, true},
		{"bill no name", BillPayload{Amount: MoneyFromCents(100), DueDate: NewDate(2025, 2, 1)}, false},
		{"debt ok", DebtPayload{Name: "Card", Amount: MoneyFromCents(100), InterestRate: 19.9}, true},
		{"debt zero rate ok", DebtPayload{Name: "Family", Amount: MoneyFromCents(100)}, true},
		{"investment ok", InvestmentPayload{Name: "VT", Type: "ETF", Amount: MoneyFromCents(100)}, true},
		{"investment no type", InvestmentPayload{Name: "VT", Amount: MoneyFromCents(100)}, false},
	}
	for _, tc := range cases {
		err := tc.p.Validate()
		if tc.ok && err != nil {
			t.Errorf("%s: expected ok, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestTransactionFilter(t *testing.T) {
	f := TransactionFilter{Month: "2025-01", Type: Expense, Category: "food"}
	q := f.Query()
	if q.Get("month") != "2025-01" || q.Get("type") != "expense" || q.Get("category") != "food" {
		t.Fatalf("unexpected query %v", q)
	}
	if len((TransactionFilter{}).Query()) != 0 {
		t.Fatalf("empty filter should produce no params")
	}

	tx := Transaction{Type: Expense, Category: "Food", Date: NewDate(2025, 1, 20)}
	if !f.Matches(tx) {
		t.Fatalf("expected match")
	}
	tx.Date = NewDate(2025, 2, 1)
	if f.Matches(tx) {
		t.Fatalf("expected month mismatch")
	}
}

func TestDerivedFigures(t *testing.T) {
	pct, bar := BudgetUsage(Budget{Amount: MoneyFromCents(10000), Spent: MoneyFromCents(15000)})
	if pct != 150 || bar != 100 {
		t.Fatalf("BudgetUsage = %v/%v, want 150/100", pct, bar)
	}

	if got := GoalProgress(Goal{TargetAmount: MoneyFromCents(1000), CurrentAmount: MoneyFromCents(250)}); got != 25 {
		t.Fatalf("GoalProgress = %v, want 25", got)
	}

	gain, gainPct := InvestmentGain(Investment{Amount: MoneyFromCents(1000), CurrentValue: MoneyFromCents(800)})
	if gain.Cents() != -200 || gainPct != -20 {
		t.Fatalf("InvestmentGain = %d/%v, want -200/-20", gain.Cents(), gainPct)
	}

	s := Summary{TotalIncome: MoneyFromCents(5000), TotalExpense: MoneyFromCents(7000)}
	if s.NetSavings().Cents() != -2000 {
		t.Fatalf("NetSavings = %d, want -2000", s.NetSavings().Cents())
	}

	if got := TotalDebt([]Debt{{Amount: MoneyFromCents(100)}, {Amount: MoneyFromCents(250)}}); got.Cents() != 350 {
		t.Fatalf("TotalDebt = %d, want 350", got.Cents())
	}
}

func TestValidationMessage(t *testing.T) {
	msg, ok := ValidationMessage(fmt.Errorf("create budget: %w", ErrEmptyCategory))
	if !ok || msg != "Create budget: category is required" {
		t.Fatalf("got %q, %v", msg, ok)
	}
	if msg, ok := ValidationMessage(ErrInvalidAmount); !ok || msg != "Invalid amount" {
		t.Fatalf("got %q, %v", msg, ok)
	}
	if _, ok := ValidationMessage(errors.New("boom")); ok {
		t.Fatal("unrelated error must not be a validation error")
	}
}
