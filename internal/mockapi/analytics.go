package mockapi

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"finboard/internal/core"
)

const (
	dashboardRecent = 5
	dashboardBills  = 5
	trendMonths     = 6
	reportMonths    = 12
)

// periodWindow returns the [start, end) range of the period containing now.
// Weeks start on Monday.
func periodWindow(p core.BudgetPeriod, now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch p {
	case core.Weekly:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case core.Yearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// budgetSpent sums the expenses in the budget's category that fall inside
// its current period.
func budgetSpent(b core.Budget, txs []core.Transaction, now time.Time) core.Money {
	start, end := periodWindow(b.Period, now)
	spent := core.Money{}
	for _, t := range txs {
		if t.Type != core.Expense || !strings.EqualFold(t.Category, b.Category) {
			continue
		}
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		spent = spent.Add(t.Amount)
	}
	return spent
}

func sortNewestFirst(txs []core.Transaction) {
	slices.SortStableFunc(txs, func(a, b core.Transaction) int {
		if c := b.Date.Compare(a.Date.Time); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
}

func sortByDueDate(bills []core.Bill) {
	slices.SortStableFunc(bills, func(a, b core.Bill) int {
		return a.DueDate.Compare(b.DueDate.Time)
	})
}

func totals(txs []core.Transaction) core.Summary {
	var s core.Summary
	for _, t := range txs {
		switch t.Type {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case core.Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// expenseByCategory groups expenses by category, largest first.
func expenseByCategory(txs []core.Transaction) []core.CategoryAmount {
	sums := map[string]core.Money{}
	var order []string
	for _, t := range txs {
		if t.Type != core.Expense {
			continue
		}
		if _, seen := sums[t.Category]; !seen {
			order = append(order, t.Category)
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	out := make([]core.CategoryAmount, 0, len(order))
	for _, c := range order {
		out = append(out, core.CategoryAmount{Category: c, Amount: sums[c]})
	}
	slices.SortStableFunc(out, func(a, b core.CategoryAmount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// monthlyTrend returns one point per month for the n months ending with the
// month of now, oldest first. Months without transactions are zero.
func monthlyTrend(txs []core.Transaction, now time.Time, n int) []core.MonthlyPoint {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	points := make([]core.MonthlyPoint, n)
	index := make(map[string]int, n)
	for i := range points {
		key := first.AddDate(0, i, 0).Format(core.MonthLayout)
		points[i].Month = key
		index[key] = i
	}
	for _, t := range txs {
		i, ok := index[t.Date.MonthKey()]
		if !ok {
			continue
		}
		switch t.Type {
		case core.Income:
			points[i].Income = points[i].Income.Add(t.Amount)
		case core.Expense:
			points[i].Expense = points[i].Expense.Add(t.Amount)
		}
	}
	return points
}

func yearly(txs []core.Transaction) []core.YearlyPoint {
	byYear := map[int]*core.YearlyPoint{}
	for _, t := range txs {
		y := t.Date.Year()
		p, ok := byYear[y]
		if !ok {
			p = &core.YearlyPoint{Year: y}
			byYear[y] = p
		}
		switch t.Type {
		case core.Income:
			p.Income = p.Income.Add(t.Amount)
		case core.Expense:
			p.Expense = p.Expense.Add(t.Amount)
		}
	}
	out := make([]core.YearlyPoint, 0, len(byYear))
	for _, p := range byYear {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b core.YearlyPoint) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

// Dashboard builds the landing page read model for a user. Snapshots are
// cached until the next write to the account.
func (s *Store) Dashboard(userID string) (core.DashboardSnapshot, error) {
	var snap core.DashboardSnapshot
	err := s.read(userID, func(a *account) error {
		if cached, ok := s.dashboards.Get(userID); ok {
			snap = cached.Clone()
			return nil
		}

		txs := slices.Clone(a.transactions)
		sum := totals(txs)
		snap.TotalIncome = sum.TotalIncome
		snap.TotalExpense = sum.TotalExpense
		snap.TotalBalance = sum.Balance

		sortNewestFirst(txs)
		snap.RecentTransactions = append([]core.Transaction{}, txs[:min(dashboardRecent, len(txs))]...)

		unpaid := make([]core.Bill, 0, len(a.bills))
		for _, b := range a.bills {
			if !b.IsPaid {
				unpaid = append(unpaid, b)
			}
		}
		sortByDueDate(unpaid)
		snap.UpcomingBills = append([]core.Bill{}, unpaid[:min(dashboardBills, len(unpaid))]...)

		snap.ExpenseByCategory = expenseByCategory(a.transactions)
		snap.MonthlyTrend = monthlyTrend(a.transactions, s.now(), trendMonths)
		s.dashboards.Set(userID, snap.Clone())
		return nil
	})
	return snap, err
}

func (s *Store) Summary(userID string) (core.Summary, error) {
	var sum core.Summary
	err := s.read(userID, func(a *account) error {
		sum = totals(a.transactions)
		return nil
	})
	return sum, err
}

// Monthly covers the last twelve months.
func (s *Store) Monthly(userID string) ([]core.MonthlyPoint, error) {
	var out []core.MonthlyPoint
	err := s.read(userID, func(a *account) error {
		out = monthlyTrend(a.transactions, s.now(), reportMonths)
		return nil
	})
	return out, err
}

func (s *Store) Categories(userID string) ([]core.CategoryAmount, error) {
	var out []core.CategoryAmount
	err := s.read(userID, func(a *account) error {
		out = expenseByCategory(a.transactions)
		return nil
	})
	return out, err
}

func (s *Store) Yearly(userID string) ([]core.YearlyPoint, error) {
	var out []core.YearlyPoint
	err := s.read(userID, func(a *account) error {
		out = yearly(a.transactions)
		return nil
	})
	return out, err
}
