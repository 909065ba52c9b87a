package sheets

import (
	"testing"

	"finboard/internal/core"
)

func TestYearPrefixedName(t *testing.T) {
	tests := []struct {
		base string
		year int
		want string
	}{
		{"Transactions", 2024, "2024 Transactions"},
		{"  Transactions ", 2024, "2024 Transactions"},
		{"2023 Transactions", 2024, "2023 Transactions"},
		{"1234Transactions", 2024, "2024 1234Transactions"},
		{"", 2024, ""},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := YearPrefixedName(tt.base, tt.year); got != tt.want {
				t.Errorf("YearPrefixedName(%q, %d) = %q, want %q", tt.base, tt.year, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	tx := core.Transaction{
		Type:        core.Expense,
		Category:    "Food",
		Description: "Lunch",
		Amount:      core.MoneyFromCents(1250),
		Date:        core.NewDate(2024, 3, 10),
	}

	got := Row(tx)
	want := []any{"2024-03-10", "expense", "Food", "Lunch", "12.50"}
	if len(got) != len(want) {
		t.Fatalf("Row() has %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(got) != len(Header) {
		t.Errorf("Row() and Header differ in width: %d vs %d", len(got), len(Header))
	}
}

func TestGroupByYear(t *testing.T) {
	txs := []core.Transaction{
		{ID: "c", Date: core.NewDate(2024, 2, 1)},
		{ID: "a", Date: core.NewDate(2023, 12, 31)},
		{ID: "b", Date: core.NewDate(2024, 1, 15)},
		{ID: "d", Date: core.NewDate(2024, 1, 15)},
	}

	groups := GroupByYear(txs)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Year != 2023 || len(groups[0].Transactions) != 1 {
		t.Errorf("unexpected first group: %+v", groups[0])
	}

	var ids []string
	for _, tx := range groups[1].Transactions {
		ids = append(ids, tx.ID)
	}
	want := []string{"b", "d", "c"}
	for i := range want {
		if i >= len(ids) || ids[i] != want[i] {
			t.Fatalf("2024 order = %v, want %v", ids, want)
		}
	}

	if got := GroupByYear(nil); len(got) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(got))
	}
}
