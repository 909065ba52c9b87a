package core

import "slices"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
}

// MonthlyPoint is one month of the income/expense trend ("2025-01").
type MonthlyPoint struct {
	Month   string `json:"month"`
	Income  Money  `json:"income"`
	Expense Money  `json:"expense"`
}

// YearlyPoint is one year of income and expense totals.
type YearlyPoint struct {
	Year    int   `json:"year"`
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
}

// Summary holds all-time totals for the current user.
type Summary struct {
	TotalIncome  Money `json:"totalIncome"`
	TotalExpense Money `json:"totalExpense"`
	Balance      Money `json:"balance"`
}

// NetSavings is income minus expense.
func (s Summary) NetSavings() Money {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// DashboardSnapshot is the read model behind the landing page.
type DashboardSnapshot struct {
	TotalBalance       Money            `json:"totalBalance"`
	TotalIncome        Money            `json:"totalIncome"`
	TotalExpense       Money            `json:"totalExpense"`
	RecentTransactions []Transaction    `json:"recentTransactions"`
	UpcomingBills      []Bill           `json:"upcomingBills"`
	ExpenseByCategory  []CategoryAmount `json:"expenseByCategory"`
	MonthlyTrend       []MonthlyPoint   `json:"monthlyTrend"`
}

// Clone returns a deep copy so callers can't mutate cached slices.
func (d DashboardSnapshot) Clone() DashboardSnapshot {
	out := d
	out.RecentTransactions = slices.Clone(d.RecentTransactions)
	out.UpcomingBills = slices.Clone(d.UpcomingBills)
	out.ExpenseByCategory = slices.Clone(d.ExpenseByCategory)
	out.MonthlyTrend = slices.Clone(d.MonthlyTrend)
	return out
}

// UnpaidCount returns how many upcoming bills are still open.
func (d DashboardSnapshot) UnpaidCount() int {
	n := 0
	for _, b := range d.UpcomingBills {
		if !b.IsPaid {
			n++
		}
	}
	return n
}

// BudgetUsage returns spent as a percentage of the budget amount, and the same
// value capped at 100 for progress bars.
func BudgetUsage(b Budget) (pct float64, bar float64) {
	pct = b.Spent.Percent(b.Amount)
	bar = pct
	if bar > 100 {
		bar = 100
	}
	return pct, bar
}

// GoalProgress returns current as a percentage of target, capped at 100.
func GoalProgress(g Goal) float64 {
	pct := g.CurrentAmount.Percent(g.TargetAmount)
	if pct > 100 {
		return 100
	}
	return pct
}

// InvestmentGain returns current value minus invested amount and the
// percentage change.
func InvestmentGain(i Investment) (Money, float64) {
	gain := i.CurrentValue.Sub(i.Amount)
	return gain, gain.Percent(i.Amount)
}

// PortfolioTotals sums invested amount and current value over a list.
func PortfolioTotals(items []Investment) (invested, value Money) {
	for _, i := range items {
		invested = invested.Add(i.Amount)
		value = value.Add(i.CurrentValue)
	}
	return invested, value
}

// TotalDebt sums the outstanding amount of every debt.
func TotalDebt(items []Debt) Money {
	total := Money{}
	for _, d := range items {
		total = total.Add(d.Amount)
	}
	return total
}
