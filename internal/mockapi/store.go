// Package mockapi is an in-memory implementation of the finance REST API the
// client consumes. It backs the integration tests and cmd/finboard-mock.
package mockapi

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"finboard/internal/cache"
	"finboard/internal/core"
)

const (
	dashboardCacheSize = 1024
	dashboardCacheTTL  = 30 * time.Second
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// account is everything one user owns.
type account struct {
	user         core.User
	passwordHash []byte

	transactions []core.Transaction
	budgets      []core.Budget
	goals        []core.Goal
	bills        []core.Bill
	debts        []core.Debt
	investments  []core.Investment
}

// Store keeps users, bearer tokens and per-user collections in memory.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*account // by user id
	byEmail  map[string]string
	tokens   map[string]string // token -> user id

	now        func() time.Time
	bcryptCost int

	// Dashboard snapshots by user id, dropped on every write to that user.
	dashboards *cache.LRU[string, core.DashboardSnapshot]
}

type StoreOption func(*Store)

// WithClock replaces time.Now; budget windows and analytics are computed from it.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithBcryptCost lowers the hashing cost (tests).
func WithBcryptCost(cost int) StoreOption {
	return func(s *Store) { s.bcryptCost = cost }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		accounts:   make(map[string]*account),
		byEmail:    make(map[string]string),
		tokens:     make(map[string]string),
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dashboards = cache.NewLRU[string, core.DashboardSnapshot](dashboardCacheSize, dashboardCacheTTL,
		cache.WithClock(func() time.Time { return s.now() }))
	return s
}

// CleanExpired drops expired cached read models.
func (s *Store) CleanExpired() int {
	return s.dashboards.CleanExpired()
}

func (s *Store) stamp() core.Date {
	return core.Date{Time: s.now().UTC().Truncate(time.Second)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and signs them in.
func (s *Store) Register(c core.Credentials) (core.AuthResult, error) {
	if err := c.ValidateRegister(); err != nil {
		return core.AuthResult{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), s.bcryptCost)
	if err != nil {
		return core.AuthResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(c.Email)
	if _, taken := s.byEmail[email]; taken {
		return core.AuthResult{}, ErrEmailTaken
	}
	user := core.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      strings.TrimSpace(c.Name),
		CreatedAt: s.stamp(),
	}
	s.accounts[user.ID] = &account{user: user, passwordHash: hash}
	s.byEmail[email] = user.ID
	return core.AuthResult{Token: s.issueLocked(user.ID), User: user}, nil
}

// Login checks the password and issues a fresh token.
func (s *Store) Login(c core.Credentials) (core.AuthResult, error) {
	if err := c.ValidateLogin(); err != nil {
		return core.AuthResult{}, err
	}

	s.mu.RLock()
	id, ok := s.byEmail[normalizeEmail(c.Email)]
	var acc *account
	if ok {
		acc = s.accounts[id]
	}
	s.mu.RUnlock()

	if acc == nil || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(c.Password)) != nil {
		return core.AuthResult{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return core.AuthResult{Token: s.issueLocked(id), User: acc.user}, nil
}

func (s *Store) issueLocked(userID string) string {
	token := uuid.NewString()
	s.tokens[token] = userID
	return token
}

// Authenticate resolves a bearer token to its user.
func (s *Store) Authenticate(token string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return core.User{}, ErrUnauthorized
	}
	acc, ok := s.accounts[id]
	if !ok {
		return core.User{}, ErrUnauthorized
	}
	return acc.user, nil
}

// Revoke invalidates a token. Unknown tokens are ignored.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// RevokeAll invalidates every token of a user, which is how tests simulate an
// expired session.
func (s *Store) RevokeAll(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, id := range s.tokens {
		if id == userID {
			delete(s.tokens, tok)
		}
	}
}

// read runs fn against a user's account under the read lock.
func (s *Store) read(userID string, fn func(a *account) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[userID]
	if !ok {
		return ErrUnauthorized
	}
	return fn(acc)
}

func (s *Store) write(userID string, fn func(a *account) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[userID]
	if !ok {
		return ErrUnauthorized
	}
	s.dashboards.Delete(userID)
	return fn(acc)
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

func removeByID[T any](items *[]T, id string, idOf func(T) string) error {
	i := indexOf(*items, id, idOf)
	if i < 0 {
		return ErrNotFound
	}
	*items = slices.Delete(*items, i, i+1)
	return nil
}

func checkAmount(m core.Money) error {
	if m.IsNegative() {
		return core.ErrNegativeAmount
	}
	return nil
}

// Transactions

func (s *Store) ListTransactions(userID string, f core.TransactionFilter) ([]core.Transaction, error) {
	var out []core.Transaction
	err := s.read(userID, func(a *account) error {
		for _, t := range a.transactions {
			if f.Matches(t) {
				out = append(out, t)
			}
		}
		return nil
	})
	sortNewestFirst(out)
	return out, err
}

func validateTransaction(p core.TransactionPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.Type.IsValid() {
		return core.ErrInvalidTransactionType
	}
	return checkAmount(p.Amount)
}

func (s *Store) CreateTransaction(userID string, p core.TransactionPayload) (core.Transaction, error) {
	if err := validateTransaction(p); err != nil {
		return core.Transaction{}, err
	}
	var t core.Transaction
	err := s.write(userID, func(a *account) error {
		t = core.Transaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Type:        p.Type,
			Category:    strings.TrimSpace(p.Category),
			Amount:      p.Amount,
			Description: strings.TrimSpace(p.Description),
			Date:        p.Date,
			CreatedAt:   s.stamp(),
		}
		a.transactions = append(a.transactions, t)
		return nil
	})
	return t, err
}

func (s *Store) UpdateTransaction(userID, id string, patch core.TransactionPatch) (core.Transaction, error) {
	var t core.Transaction
	err := s.write(userID, func(a *account) error {
		i := indexOf(a.transactions, id, func(t core.Transaction) string { return t.ID })
		if i < 0 {
			return ErrNotFound
		}
		cur := a.transactions[i]
		p := core.TransactionPayload{
			Type: cur.Type, Category: cur.Category, Amount: cur.Amount,
			Description: cur.Description, Date: cur.Date,
		}
		if patch.Type != nil {
			p.Type = *patch.Type
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Date != nil {
			p.Date = *patch.Date
		}
		if err := validateTransaction(p); err != nil {
			return err
		}
		cur.Type, cur.Category, cur.Amount, cur.Description, cur.Date = p.Type, p.Category, p.Amount, p.Description, p.Date
		a.transactions[i] = cur
		t = cur
		return nil
	})
	return t, err
}

func (s *Store) DeleteTransaction(userID, id string) error {
	return s.write(userID, func(a *account) error {
		return removeByID(&a.transactions, id, func(t core.Transaction) string { return t.ID })
	})
}

// Budgets

func validateBudget(p core.BudgetPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.Period.IsValid() {
		return core.ErrInvalidPeriod
	}
	return checkAmount(p.Amount)
}

// ListBudgets fills in each budget's spent amount for its current period.
func (s *Store) ListBudgets(userID string) ([]core.Budget, error) {
	var out []core.Budget
	err := s.read(userID, func(a *account) error {
		now := s.now()
		for _, b := range a.budgets {
			b.Spent = budgetSpent(b, a.transactions, now)
			out = append(out, b)
		}
		return nil
	})
	return out, err
}

func (s *Store) CreateBudget(userID string, p core.BudgetPayload) (core.Budget, error) {
	if err := validateBudget(p); err != nil {
		return core.Budget{}, err
	}
	var b core.Budget
	err := s.write(userID, func(a *account) error {
		b = core.Budget{
			ID:        uuid.NewString(),
			UserID:    userID,
			Category:  strings.TrimSpace(p.Category),
			Amount:    p.Amount,
			Period:    p.Period,
			CreatedAt: s.stamp(),
		}
		a.budgets = append(a.budgets, b)
		b.Spent = budgetSpent(b, a.transactions, s.now())
		return nil
	})
	return b, err
}

func (s *Store) UpdateBudget(userID, id string, patch core.BudgetPatch) (core.Budget, error) {
	var b core.Budget
	err := s.write(userID, func(a *account) error {
		i := indexOf(a.budgets, id, func(b core.Budget) string { return b.ID })
		if i < 0 {
			return ErrNotFound
		}
		cur := a.budgets[i]
		p := core.BudgetPayload{Category: cur.Category, Amount: cur.Amount, Period: cur.Period}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.Period != nil {
			p.Period = *patch.Period
		}
		if err := validateBudget(p); err != nil {
			return err
		}
		cur.Category, cur.Amount, cur.Period = strings.TrimSpace(p.Category), p.Amount, p.Period
		a.budgets[i] = cur
		b = cur
		b.Spent = budgetSpent(b, a.transactions, s.now())
		return nil
	})
	return b, err
}

func (s *Store) DeleteBudget(userID, id string) error {
	return s.write(userID, func(a *account) error {
		return removeByID(&a.budgets, id, func(b core.Budget) string { return b.ID })
	})
}

// Goals

func (s *Store) ListGoals(userID string) ([]core.Goal, error) {
	var out []core.Goal
	err := s.read(userID, func(a *account) error {
		out = slices.Clone(a.goals)
		return nil
	})
	return out, err
}

func (s *Store) CreateGoal(userID string, p core.GoalPayload) (core.Goal, error) {
	if err := p.Validate(); err != nil {
		return core.Goal{}, err
	}
	if err := checkAmount(p.TargetAmount); err != nil {
		return core.Goal{}, err
	}
	current := core.Money{}
	if p.CurrentAmount != nil {
		if err := checkAmount(*p.CurrentAmount); err != nil {
			return core.Goal{}, err
		}
		current = *p.CurrentAmount
	}
	var g core.Goal
	err := s.write(userID, func(a *account) error {
		g = core.Goal{
			ID:            uuid.NewString(),
			UserID:        userID,
			Name:          strings.TrimSpace(p.Name),
			TargetAmount:  p.TargetAmount,
			CurrentAmount: current,
			TargetDate:    p.TargetDate,
			CreatedAt:     s.stamp(),
		}
		a.goals = append(a.goals, g)
		return nil
	})
	return g, err
}

// SaveToGoal adds amount to the goal's current amount.
func (s *Store) SaveToGoal(userID, id string, amount core.Money) (core.Goal, error) {
	if err := (core.SavePayload{Amount: amount}).Validate(); err != nil {
		return core.Goal{}, err
	}
	if err := checkAmount(amount); err != nil {
		return core.Goal{}, err
	}
	var g core.Goal
	err := s.write(userID, func(a *account) error {
		i := indexOf(a.goals, id, func(g core.Goal) string { return g.ID })
		if i < 0 {
			return ErrNotFound
		}
		a.goals[i].CurrentAmount = a.goals[i].CurrentAmount.Add(amount)
		g = a.goals[i]
		return nil
	})
	return g, err
}

func (s *Store) DeleteGoal(userID, id string) error {
	return s.write(userID, func(a *account) error {
		return removeByID(&a.goals, id, func(g core.Goal) string { return g.ID })
	})
}

// Bills

// ListBills returns bills ordered by due date.
func (s *Store) ListBills(userID string) ([]core.Bill, error) {
	var out []core.Bill
	err := s.read(userID, func(a *account) error {
		out = slices.Clone(a.bills)
		return nil
	})
	sortByDueDate(out)
	return out, err
}

func (s *Store) CreateBill(userID string, p core.BillPayload) (core.Bill, error) {
	if err := p.Validate(); err != nil {
		return core.Bill{}, err
	}
	if err := checkAmount(p.Amount); err != nil {
		return core.Bill{}, err
	}
	var b core.Bill
	err := s.write(userID, func(a *account) error {
		b = core.Bill{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      strings.TrimSpace(p.Name),
			Amount:    p.Amount,
			DueDate:   p.DueDate,
			CreatedAt: s.stamp(),
		}
		a.bills = append(a.bills, b)
		return nil
	})
	return b, err
}

// PayBill marks a bill paid. Paying a paid bill leaves it paid.
func (s *Store) PayBill(userID, id string) (core.Bill, error) {
	var b core.Bill
	err := s.write(userID, func(a *account) error {
		i := indexOf(a.bills, id, func(b core.Bill) string { return b.ID })
		if i < 0 {
			return ErrNotFound
		}
		a.bills[i].IsPaid = true
		b = a.bills[i]
		return nil
	})
	return b, err
}

func (s *Store) DeleteBill(userID, id string) error {
	return s.write(userID, func(a *account) error {
		return removeByID(&a.bills, id, func(b core.Bill) string { return b.ID })
	})
}

// Debts

func (s *Store) ListDebts(userID string) ([]core.Debt, error) {
	var out []core.Debt
	err := s.read(userID, func(a *account) error {
		out = slices.Clone(a.debts)
		return nil
	})
	return out, err
}

func validateDebt(p core.DebtPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.InterestRate < 0 {
		return core.ErrNegativeAmount
	}
	return checkAmount(p.Amount)
}

func (s *Store) CreateDebt(userID string, p core.DebtPayload) (core.Debt, error) {
	if err := validateDebt(p); err != nil {
		return core.Debt{}, err
	}
	var d core.Debt
	err := s.write(userID, func(a *account) error {
		d = core.Debt{
			ID:           uuid.NewString(),
			UserID:       userID,
			Name:         strings.TrimSpace(p.Name),
			Amount:       p.Amount,
			InterestRate: p.InterestRate,
			CreatedAt:    s.stamp(),
		}
		a.debts = append(a.debts, d)
		return nil
	})
	return d, err
}

func (s *Store) UpdateDebt(userID, id string, patch core.DebtPatch) (core.Debt, error) {
	var d core.Debt
	err := s.write(userID, func(a *account) error {
		i := indexOf(a.debts, id, func(d core.Debt) string { return d.ID })
		if i < 0 {
			return ErrNotFound
		}
		cur := a.debts[i]
		p := core.DebtPayload{Name: cur.Name, Amount: cur.Amount, InterestRate: cur.InterestRate}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.InterestRate != nil {
			p.InterestRate = *patch.InterestRate
		}
		if err := validateDebt(p); err != nil {
			return err
		}
		cur.Name, cur.Amount, cur.InterestRate = strings.TrimSpace(p.Name), p.Amount, p.InterestRate
		a.debts[i] = cur
		d = cur
		return nil
	})
	return d, err
}

func (s *Store) DeleteDebt(userID, id string) error {
	return s.write(userID, func(a *account) error {
		return removeByID(&a.debts, id, func(d core.Debt) string { return d.ID })
	})
}

// Investments

func (s *Store) ListInvestments(userID string) ([]core.Investment, error) {
	var out []core.Investment
	err := s.read(userID, func(a *account) error {
		out = slices.Clone(a.investments)
		return nil
	})
	return out, err
}

func validateInvestment(p core.InvestmentPayload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := checkAmount(p.Amount); err != nil {
		return err
	}
	if p.CurrentValue != nil {
		return checkAmount(*p.CurrentValue)
	}
	return nil
}

// CreateInvestment defaults the current value to the invested amount.
func (s *Store) CreateInvestment(userID string, p core.InvestmentPayload) (core.Investment, error) {
	if err := validateInvestment(p); err != nil {
		return core.Investment{}, err
	}
	value := p.Amount
	if p.CurrentValue != nil {
		value = *p.CurrentValue
	}
	var inv core.Investment
	err := s.write(userID, func(a *account) error {
		inv = core.Investment{
			ID:           uuid.NewString(),
			UserID:       userID,
			Name:         strings.TrimSpace(p.Name),
			Type:         strings.TrimSpace(p.Type),
			Amount:       p.Amount,
			CurrentValue: value,
			CreatedAt:    s.stamp(),
		}
		a.investments = append(a.investments, inv)
		return nil
	})
	return inv, err
}

func (s *Store) UpdateInvestment(userID, id string, patch core.InvestmentPatch) (core.Investment, error) {
	var inv core.Investment
	err := s.write(userID, func(a *account) error {
		i := indexOf(a.investments, id, func(inv core.Investment) string { return inv.ID })
		if i < 0 {
			return ErrNotFound
		}
		cur := a.investments[i]
		value := cur.CurrentValue
		p := core.InvestmentPayload{Name: cur.Name, Type: cur.Type, Amount: cur.Amount, CurrentValue: &value}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Type != nil {
			p.Type = *patch.Type
		}
		if patch.Amount != nil {
			p.Amount = *patch.Amount
		}
		if patch.CurrentValue != nil {
			p.CurrentValue = patch.CurrentValue
		}
		if err := validateInvestment(p); err != nil {
			return err
		}
		cur.Name, cur.Type, cur.Amount, cur.CurrentValue = strings.TrimSpace(p.Name), strings.TrimSpace(p.Type), p.Amount, *p.CurrentValue
		a.investments[i] = cur
		inv = cur
		return nil
	})
	return inv, err
}

func (s *Store) DeleteInvestment(userID, id string) error {
	return s.write(userID, func(a *account) error {
		return removeByID(&a.investments, id, func(inv core.Investment) string { return inv.ID })
	})
}
