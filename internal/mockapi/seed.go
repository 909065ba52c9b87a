package mockapi

import (
	"fmt"

	"finboard/internal/core"
)

// Demo account created by Seed.
const (
	DemoName     = "Demo User"
	DemoEmail    = "demo@finboard.local"
	DemoPassword = "demo-password"
)

func money(cents int64) core.Money { return core.MoneyFromCents(cents) }

// Seed registers the demo account and fills it with a few months of data
// dated relative to the store's clock.
func Seed(s *Store) (core.User, error) {
	res, err := s.Register(core.Credentials{Name: DemoName, Email: DemoEmail, Password: DemoPassword})
	if err != nil {
		return core.User{}, fmt.Errorf("seed demo user: %w", err)
	}
	uid := res.User.ID
	now := s.now().UTC()
	day := func(monthsAgo, d int) core.Date {
		t := now.AddDate(0, -monthsAgo, 0)
		return core.NewDate(t.Year(), int(t.Month()), d)
	}

	for m := 0; m < 3; m++ {
		txs := []core.TransactionPayload{
			{Type: core.Income, Category: "Salary", Amount: money(420000), Description: "Monthly salary", Date: day(m, 1)},
			{Type: core.Expense, Category: "Bills", Amount: money(135000), Description: "Rent", Date: day(m, 2)},
			{Type: core.Expense, Category: "Food", Amount: money(8450 + int64(m)*1200), Description: "Groceries", Date: day(m, 5)},
			{Type: core.Expense, Category: "Transport", Amount: money(6000), Description: "Transit pass", Date: day(m, 3)},
		}
		if m == 0 {
			txs = append(txs, core.TransactionPayload{
				Type: core.Income, Category: "Freelance", Amount: money(75000), Description: "Logo design", Date: day(0, 1),
			})
		}
		for _, p := range txs {
			if _, err := s.CreateTransaction(uid, p); err != nil {
				return core.User{}, fmt.Errorf("seed transaction: %w", err)
			}
		}
	}

	budgets := []core.BudgetPayload{
		{Category: "Food", Amount: money(50000), Period: core.Monthly},
		{Category: "Transport", Amount: money(20000), Period: core.Monthly},
		{Category: "Entertainment", Amount: money(100000), Period: core.Yearly},
	}
	for _, p := range budgets {
		if _, err := s.CreateBudget(uid, p); err != nil {
			return core.User{}, fmt.Errorf("seed budget: %w", err)
		}
	}

	saved := money(120000)
	if _, err := s.CreateGoal(uid, core.GoalPayload{
		Name: "Emergency fund", TargetAmount: money(1000000), CurrentAmount: &saved,
		TargetDate: core.NewDate(now.Year()+1, 6, 30),
	}); err != nil {
		return core.User{}, fmt.Errorf("seed goal: %w", err)
	}

	next := now.AddDate(0, 1, 0)
	for _, p := range []core.BillPayload{
		{Name: "Electricity", Amount: money(7425), DueDate: core.NewDate(next.Year(), int(next.Month()), 10)},
		{Name: "Internet", Amount: money(4999), DueDate: core.NewDate(next.Year(), int(next.Month()), 15)},
	} {
		if _, err := s.CreateBill(uid, p); err != nil {
			return core.User{}, fmt.Errorf("seed bill: %w", err)
		}
	}

	if _, err := s.CreateDebt(uid, core.DebtPayload{Name: "Car loan", Amount: money(850000), InterestRate: 4.9}); err != nil {
		return core.User{}, fmt.Errorf("seed debt: %w", err)
	}

	value := money(612000)
	if _, err := s.CreateInvestment(uid, core.InvestmentPayload{
		Name: "World index", Type: "ETF", Amount: money(500000), CurrentValue: &value,
	}); err != nil {
		return core.User{}, fmt.Errorf("seed investment: %w", err)
	}

	return res.User, nil
}
