package sheets

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"finboard/internal/core"
)

// Ports for outbound adapters.
type (
	// TransactionExporter appends transactions to a spreadsheet. Rows land in
	// one sheet per calendar year, named "<year> <base>".
	TransactionExporter interface {
		Export(ctx context.Context, txs []core.Transaction) (Result, error)
	}
)

// Result describes what an export wrote.
type Result struct {
	Rows   int
	Ranges []string
}

// Header is written as the first row of an empty sheet.
var Header = []any{"Date", "Type", "Category", "Description", "Amount"}

// Row renders one transaction in Header order. Amounts are plain decimals so
// the spreadsheet parses them as numbers.
func Row(t core.Transaction) []any {
	return []any{t.Date.Format(core.DateLayout), string(t.Type), t.Category, t.Description, t.Amount.String()}
}

// YearGroup is the slice of an export that goes to one sheet.
type YearGroup struct {
	Year         int
	Transactions []core.Transaction
}

// GroupByYear splits txs by calendar year, oldest year first. Within a year
// transactions keep date order, ties in input order.
func GroupByYear(txs []core.Transaction) []YearGroup {
	byYear := map[int][]core.Transaction{}
	for _, t := range txs {
		byYear[t.Date.Year()] = append(byYear[t.Date.Year()], t)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)

	out := make([]YearGroup, 0, len(years))
	for _, y := range years {
		group := byYear[y]
		slices.SortStableFunc(group, func(a, b core.Transaction) int { return a.Date.Compare(b.Date.Time) })
		out = append(out, YearGroup{Year: y, Transactions: group})
	}
	return out
}

// YearPrefixedName returns "<year> <base>" unless base already starts with a 4-digit year.
func YearPrefixedName(base string, year int) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return base
	}
	if len(base) >= 5 {
		if y, err := strconv.Atoi(base[0:4]); err == nil && base[4] == ' ' && y > 1900 && y < 3000 {
			return base
		}
	}
	return fmt.Sprintf("%d %s", year, base)
}
