package memory

import (
	"context"
	"fmt"
	"sync"

	"finboard/internal/core"
	ports "finboard/internal/sheets"
)

var _ ports.TransactionExporter = (*Store)(nil)

// Store keeps exported rows per sheet, header included, in memory.
type Store struct {
	mu     sync.Mutex
	base   string
	sheets map[string][][]any
}

func New(base string) *Store {
	if base == "" {
		base = "Transactions"
	}
	return &Store{base: base, sheets: map[string][][]any{}}
}

// Export appends txs to the year-prefixed sheets and returns synthetic
// A1 ranges for the written rows.
func (s *Store) Export(_ context.Context, txs []core.Transaction) (ports.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res ports.Result
	for _, g := range ports.GroupByYear(txs) {
		name := ports.YearPrefixedName(s.base, g.Year)
		rows := s.sheets[name]
		if len(rows) == 0 {
			rows = append(rows, ports.Header)
		}
		first := len(rows) + 1
		for _, t := range g.Transactions {
			rows = append(rows, ports.Row(t))
		}
		s.sheets[name] = rows
		res.Rows += len(g.Transactions)
		res.Ranges = append(res.Ranges, fmt.Sprintf("%s!A%d:E%d", name, first, len(rows)))
	}
	return res, nil
}

// Rows returns a copy of everything written to sheet, header first.
func (s *Store) Rows(sheet string) [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]any, len(s.sheets[sheet]))
	copy(out, s.sheets[sheet])
	return out
}

// Sheets lists the sheet names written so far.
func (s *Store) Sheets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.sheets))
	for name := range s.sheets {
		out = append(out, name)
	}
	return out
}
