package api

import (
	"context"

	"finboard/internal/core"
)

// Gateway contracts. Each call maps to exactly one HTTP request; none of them
// retry, cache or hold state.
//
//go:generate mockgen -destination=mocks/mock_gateways.go -source=gateways.go
type (
	AuthGateway interface {
		Register(ctx context.Context, c core.Credentials) (core.AuthResult, error)
		Login(ctx context.Context, c core.Credentials) (core.AuthResult, error)
		Me(ctx context.Context) (core.User, error)
		// Logout is sent with an explicit token because the session has
		// already been cleared locally by the time it runs.
		Logout(ctx context.Context, token string) error
	}

	TransactionGateway interface {
		List(ctx context.Context, f core.TransactionFilter) ([]core.Transaction, error)
		Create(ctx context.Context, p core.TransactionPayload) (core.Transaction, error)
		Update(ctx context.Context, id string, p core.TransactionPatch) (core.Transaction, error)
		Delete(ctx context.Context, id string) error
	}

	BudgetGateway interface {
		List(ctx context.Context) ([]core.Budget, error)
		Create(ctx context.Context, p core.BudgetPayload) (core.Budget, error)
		Update(ctx context.Context, id string, p core.BudgetPatch) (core.Budget, error)
		Delete(ctx context.Context, id string) error
	}

	GoalGateway interface {
		List(ctx context.Context) ([]core.Goal, error)
		Create(ctx context.Context, p core.GoalPayload) (core.Goal, error)
		Save(ctx context.Context, id string, amount core.Money) (core.Goal, error)
		Delete(ctx context.Context, id string) error
	}

	BillGateway interface {
		List(ctx context.Context) ([]core.Bill, error)
		Create(ctx context.Context, p core.BillPayload) (core.Bill, error)
		Pay(ctx context.Context, id string) (core.Bill, error)
		Delete(ctx context.Context, id string) error
	}

	DebtGateway interface {
		List(ctx context.Context) ([]core.Debt, error)
		Create(ctx context.Context, p core.DebtPayload) (core.Debt, error)
		Update(ctx context.Context, id string, p core.DebtPatch) (core.Debt, error)
		Delete(ctx context.Context, id string) error
	}

	InvestmentGateway interface {
		List(ctx context.Context) ([]core.Investment, error)
		Create(ctx context.Context, p core.InvestmentPayload) (core.Investment, error)
		Update(ctx context.Context, id string, p core.InvestmentPatch) (core.Investment, error)
		Delete(ctx context.Context, id string) error
	}

	AnalyticsGateway interface {
		Dashboard(ctx context.Context) (core.DashboardSnapshot, error)
		Summary(ctx context.Context) (core.Summary, error)
		Monthly(ctx context.Context) ([]core.MonthlyPoint, error)
		Categories(ctx context.Context) ([]core.CategoryAmount, error)
		Yearly(ctx context.Context) ([]core.YearlyPoint, error)
	}
)

// Gateways bundles one gateway per resource.
type Gateways struct {
	Auth         AuthGateway
	Transactions TransactionGateway
	Budgets      BudgetGateway
	Goals        GoalGateway
	Bills        BillGateway
	Debts        DebtGateway
	Investments  InvestmentGateway
	Analytics    AnalyticsGateway
}

// NewGateways wires every gateway to the same client.
func NewGateways(c *Client) Gateways {
	return Gateways{
		Auth:         &authGateway{c: c},
		Transactions: &transactionGateway{c: c},
		Budgets:      &budgetGateway{c: c},
		Goals:        &goalGateway{c: c},
		Bills:        &billGateway{c: c},
		Debts:        &debtGateway{c: c},
		Investments:  &investmentGateway{c: c},
		Analytics:    &analyticsGateway{c: c},
	}
}
