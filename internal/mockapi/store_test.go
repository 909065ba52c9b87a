package mockapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"finboard/internal/core"
)

// Friday.
var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(WithClock(func() time.Time { return fixedNow }), WithBcryptCost(bcrypt.MinCost))
}

func register(t *testing.T, s *Store, email string) core.AuthResult {
	t.Helper()
	res, err := s.Register(core.Credentials{Name: "Test", Email: email, Password: "secret"})
	require.NoError(t, err)
	return res
}

func cents(c int64) core.Money { return core.MoneyFromCents(c) }

func TestPeriodWindow(t *testing.T) {
	d := func(y, m, day int) time.Time { return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		period    core.BudgetPeriod
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"weekly from friday", core.Weekly, fixedNow, d(2024, 3, 11), d(2024, 3, 18)},
		{"weekly from sunday", core.Weekly, d(2024, 3, 17).Add(23 * time.Hour), d(2024, 3, 11), d(2024, 3, 18)},
		{"weekly from monday", core.Weekly, d(2024, 3, 11), d(2024, 3, 11), d(2024, 3, 18)},
		{"monthly", core.Monthly, fixedNow, d(2024, 3, 1), d(2024, 4, 1)},
		{"monthly in december", core.Monthly, d(2023, 12, 31), d(2023, 12, 1), d(2024, 1, 1)},
		{"yearly", core.Yearly, fixedNow, d(2024, 1, 1), d(2025, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := periodWindow(tt.period, tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestBudgetSpentCountsCurrentPeriodExpenses(t *testing.T) {
	tx := func(typ core.TransactionType, cat string, c int64, y, m, d int) core.Transaction {
		return core.Transaction{Type: typ, Category: cat, Amount: cents(c), Date: core.NewDate(y, m, d)}
	}
	txs := []core.Transaction{
		tx(core.Expense, "Food", 1000, 2024, 3, 2),
		tx(core.Expense, "food", 250, 2024, 3, 12),
		tx(core.Expense, "Food", 500, 2024, 2, 29),     // previous month
		tx(core.Income, "Food", 10000, 2024, 3, 3),     // income never counts
		tx(core.Expense, "Transport", 700, 2024, 3, 4), // other category
	}

	monthly := budgetSpent(core.Budget{Category: "Food", Period: core.Monthly}, txs, fixedNow)
	assert.Equal(t, "12.50", monthly.String())

	weekly := budgetSpent(core.Budget{Category: "Food", Period: core.Weekly}, txs, fixedNow)
	assert.Equal(t, "2.50", weekly.String())

	yearly := budgetSpent(core.Budget{Category: "FOOD", Period: core.Yearly}, txs, fixedNow)
	assert.Equal(t, "17.50", yearly.String())
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestStore(t)
	res := register(t, s, "Ada@Example.com")
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ada@example.com", res.User.Email)

	_, err := s.Register(core.Credentials{Name: "Other", Email: "ada@example.com ", Password: "x"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.Login(core.Credentials{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(core.Credentials{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	again, err := s.Login(core.Credentials{Email: "ADA@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEqual(t, res.Token, again.Token)

	u, err := s.Authenticate(again.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, u.ID)

	s.Revoke(again.Token)
	_, err = s.Authenticate(again.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The first token is still live until every token is revoked.
	_, err = s.Authenticate(res.Token)
	assert.NoError(t, err)
	s.RevokeAll(res.User.ID)
	_, err = s.Authenticate(res.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Register(core.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, core.ErrEmptyName)
	_, err = s.Login(core.Credentials{Email: "a@b.c"})
	assert.ErrorIs(t, err, core.ErrEmptyPassword)
}

func TestUsersAreIsolated(t *testing.T) {
	s := newTestStore(t)
	alice := register(t, s, "alice@example.com").User.ID
	bob := register(t, s, "bob@example.com").User.ID

	goal, err := s.CreateGoal(alice, core.GoalPayload{Name: "Bike", TargetAmount: cents(50000), TargetDate: core.NewDate(2024, 12, 1)})
	require.NoError(t, err)

	goals, err := s.ListGoals(bob)
	require.NoError(t, err)
	assert.Empty(t, goals)

	_, err = s.SaveToGoal(bob, goal.ID, cents(100))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteGoal(bob, goal.ID), ErrNotFound)

	goals, err = s.ListGoals(alice)
	require.NoError(t, err)
	assert.Len(t, goals, 1)
}

func TestTransactionsCRUD(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "t@example.com").User.ID

	_, err := s.CreateTransaction(uid, core.TransactionPayload{
		Type: "gift", Category: "Other", Amount: cents(100), Description: "x", Date: core.NewDate(2024, 3, 1),
	})
	assert.ErrorIs(t, err, core.ErrInvalidTransactionType)

	_, err = s.CreateTransaction(uid, core.TransactionPayload{
		Type: core.Expense, Category: "Food", Amount: cents(-100), Description: "x", Date: core.NewDate(2024, 3, 1),
	})
	assert.ErrorIs(t, err, core.ErrNegativeAmount)

	older, err := s.CreateTransaction(uid, core.TransactionPayload{
		Type: core.Expense, Category: "Food", Amount: cents(1250), Description: "Lunch", Date: core.NewDate(2024, 2, 20),
	})
	require.NoError(t, err)
	newer, err := s.CreateTransaction(uid, core.TransactionPayload{
		Type: core.Income, Category: "Salary", Amount: cents(300000), Description: "March", Date: core.NewDate(2024, 3, 1),
	})
	require.NoError(t, err)

	all, err := s.ListTransactions(uid, core.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID, "newest first")

	feb, err := s.ListTransactions(uid, core.TransactionFilter{Month: "2024-02"})
	require.NoError(t, err)
	require.Len(t, feb, 1)
	assert.Equal(t, older.ID, feb[0].ID)

	desc := "Team lunch"
	updated, err := s.UpdateTransaction(uid, older.ID, core.TransactionPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Team lunch", updated.Description)
	assert.Equal(t, "12.50", updated.Amount.String(), "unpatched fields kept")

	empty := ""
	_, err = s.UpdateTransaction(uid, older.ID, core.TransactionPatch{Category: &empty})
	assert.ErrorIs(t, err, core.ErrEmptyCategory)

	require.NoError(t, s.DeleteTransaction(uid, older.ID))
	assert.ErrorIs(t, s.DeleteTransaction(uid, older.ID), ErrNotFound)
}

func TestPayBillIsOneWay(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "b@example.com").User.ID

	bill, err := s.CreateBill(uid, core.BillPayload{Name: "Rent", Amount: cents(100000), DueDate: core.NewDate(2024, 4, 1)})
	require.NoError(t, err)
	assert.False(t, bill.IsPaid)

	paid, err := s.PayBill(uid, bill.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)

	again, err := s.PayBill(uid, bill.ID)
	require.NoError(t, err)
	assert.True(t, again.IsPaid)

	_, err = s.PayBill(uid, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveToGoalIsAdditive(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "g@example.com").User.ID

	start := cents(5000)
	goal, err := s.CreateGoal(uid, core.GoalPayload{
		Name: "Trip", TargetAmount: cents(100000), CurrentAmount: &start, TargetDate: core.NewDate(2024, 8, 1),
	})
	require.NoError(t, err)

	goal, err = s.SaveToGoal(uid, goal.ID, cents(2500))
	require.NoError(t, err)
	goal, err = s.SaveToGoal(uid, goal.ID, cents(2500))
	require.NoError(t, err)
	assert.Equal(t, "100.00", goal.CurrentAmount.String())

	_, err = s.SaveToGoal(uid, goal.ID, core.Money{})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestBudgetsCarrySpent(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "budget@example.com").User.ID

	_, err := s.CreateBudget(uid, core.BudgetPayload{Category: "Food", Amount: cents(40000), Period: "daily"})
	assert.ErrorIs(t, err, core.ErrInvalidPeriod)

	b, err := s.CreateBudget(uid, core.BudgetPayload{Category: "Food", Amount: cents(40000), Period: core.Monthly})
	require.NoError(t, err)
	assert.True(t, b.Spent.IsZero())

	_, err = s.CreateTransaction(uid, core.TransactionPayload{
		Type: core.Expense, Category: "Food", Amount: cents(4200), Description: "Market", Date: core.NewDate(2024, 3, 14),
	})
	require.NoError(t, err)

	budgets, err := s.ListBudgets(uid)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "42.00", budgets[0].Spent.String())

	weekly := core.Weekly
	b, err = s.UpdateBudget(uid, b.ID, core.BudgetPatch{Period: &weekly})
	require.NoError(t, err)
	assert.Equal(t, core.Weekly, b.Period)
	assert.Equal(t, "42.00", b.Spent.String())
}

func TestInvestmentDefaultsCurrentValue(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "i@example.com").User.ID

	inv, err := s.CreateInvestment(uid, core.InvestmentPayload{Name: "Bonds", Type: "Bonds", Amount: cents(10000)})
	require.NoError(t, err)
	assert.Equal(t, "100.00", inv.CurrentValue.String())

	value := cents(12000)
	inv, err = s.UpdateInvestment(uid, inv.ID, core.InvestmentPatch{CurrentValue: &value})
	require.NoError(t, err)
	assert.Equal(t, "120.00", inv.CurrentValue.String())
	assert.Equal(t, "100.00", inv.Amount.String())
}

func TestDashboardAggregates(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "d@example.com").User.ID

	for i := 1; i <= 7; i++ {
		_, err := s.CreateTransaction(uid, core.TransactionPayload{
			Type: core.Expense, Category: []string{"Food", "Transport"}[i%2], Amount: cents(int64(i) * 100),
			Description: "tx", Date: core.NewDate(2024, 3, i),
		})
		require.NoError(t, err)
	}
	_, err := s.CreateTransaction(uid, core.TransactionPayload{
		Type: core.Income, Category: "Salary", Amount: cents(100000), Description: "pay", Date: core.NewDate(2023, 11, 30),
	})
	require.NoError(t, err)

	for i := 1; i <= 7; i++ {
		b, err := s.CreateBill(uid, core.BillPayload{Name: "bill", Amount: cents(1000), DueDate: core.NewDate(2024, 4, 10-i)})
		require.NoError(t, err)
		if i == 1 {
			_, err = s.PayBill(uid, b.ID)
			require.NoError(t, err)
		}
	}

	snap, err := s.Dashboard(uid)
	require.NoError(t, err)

	assert.Equal(t, "1000.00", snap.TotalIncome.String())
	assert.Equal(t, "28.00", snap.TotalExpense.String())
	assert.Equal(t, "972.00", snap.TotalBalance.String())

	require.Len(t, snap.RecentTransactions, 5)
	assert.Equal(t, 7, snap.RecentTransactions[0].Date.Day())
	assert.Equal(t, 3, snap.RecentTransactions[4].Date.Day())

	require.Len(t, snap.UpcomingBills, 5)
	for i, b := range snap.UpcomingBills {
		assert.False(t, b.IsPaid)
		assert.Equal(t, 3+i, b.DueDate.Day(), "ordered by due date")
	}

	require.Len(t, snap.ExpenseByCategory, 2)
	assert.Equal(t, "Transport", snap.ExpenseByCategory[0].Category)
	assert.Equal(t, "16.00", snap.ExpenseByCategory[0].Amount.String())
	assert.Equal(t, "12.00", snap.ExpenseByCategory[1].Amount.String())

	require.Len(t, snap.MonthlyTrend, 6)
	assert.Equal(t, "2023-10", snap.MonthlyTrend[0].Month)
	assert.Equal(t, "2024-03", snap.MonthlyTrend[5].Month)
	assert.Equal(t, "1000.00", snap.MonthlyTrend[1].Income.String())
	assert.Equal(t, "28.00", snap.MonthlyTrend[5].Expense.String())
}

func TestDashboardCacheDroppedOnWrite(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "c@example.com").User.ID

	first, err := s.Dashboard(uid)
	require.NoError(t, err)
	assert.True(t, first.TotalBalance.IsZero())

	again, err := s.Dashboard(uid)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	hits, _ := s.dashboards.Stats()
	assert.Equal(t, uint64(1), hits)

	// Callers can't corrupt the cached copy.
	again.RecentTransactions = append(again.RecentTransactions, core.Transaction{ID: "bogus"})

	_, err = s.CreateTransaction(uid, core.TransactionPayload{
		Type: core.Income, Category: "Salary", Amount: cents(5000), Description: "pay", Date: core.NewDate(2024, 3, 1),
	})
	require.NoError(t, err)

	snap, err := s.Dashboard(uid)
	require.NoError(t, err)
	assert.Equal(t, "50.00", snap.TotalBalance.String())
	require.Len(t, snap.RecentTransactions, 1)
	assert.Equal(t, "pay", snap.RecentTransactions[0].Description)
}

func TestReports(t *testing.T) {
	s := newTestStore(t)
	uid := register(t, s, "r@example.com").User.ID

	for _, p := range []core.TransactionPayload{
		{Type: core.Income, Category: "Salary", Amount: cents(200000), Description: "a", Date: core.NewDate(2023, 6, 1)},
		{Type: core.Expense, Category: "Food", Amount: cents(5000), Description: "b", Date: core.NewDate(2024, 1, 5)},
		{Type: core.Income, Category: "Salary", Amount: cents(210000), Description: "c", Date: core.NewDate(2024, 2, 1)},
	} {
		_, err := s.CreateTransaction(uid, p)
		require.NoError(t, err)
	}

	sum, err := s.Summary(uid)
	require.NoError(t, err)
	assert.Equal(t, "4100.00", sum.TotalIncome.String())
	assert.Equal(t, "4050.00", sum.Balance.String())

	monthly, err := s.Monthly(uid)
	require.NoError(t, err)
	require.Len(t, monthly, 12)
	assert.Equal(t, "2023-04", monthly[0].Month)
	assert.Equal(t, "2000.00", monthly[2].Income.String())

	years, err := s.Yearly(uid)
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, 2023, years[0].Year)
	assert.Equal(t, "50.00", years[1].Expense.String())

	cats, err := s.Categories(uid)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Food", cats[0].Category)
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)
	user, err := Seed(s)
	require.NoError(t, err)
	assert.Equal(t, DemoEmail, user.Email)

	_, err = s.Login(core.Credentials{Email: DemoEmail, Password: DemoPassword})
	require.NoError(t, err)

	snap, err := s.Dashboard(user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.RecentTransactions)
	assert.Len(t, snap.UpcomingBills, 2)

	_, err = Seed(s)
	assert.ErrorIs(t, err, ErrEmailTaken)
}
