package api

import (
	"context"
	"net/http"
	"net/url"

	"finboard/internal/core"
)

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

type transactionGateway struct{ c *Client }

func (g *transactionGateway) List(ctx context.Context, f core.TransactionFilter) ([]core.Transaction, error) {
	return call[[]core.Transaction](ctx, g.c, request{
		method: http.MethodGet, path: "/transactions", query: f.Query(),
	})
}

func (g *transactionGateway) Create(ctx context.Context, p core.TransactionPayload) (core.Transaction, error) {
	return call[core.Transaction](ctx, g.c, request{method: http.MethodPost, path: "/transactions", body: p})
}

func (g *transactionGateway) Update(ctx context.Context, id string, p core.TransactionPatch) (core.Transaction, error) {
	return call[core.Transaction](ctx, g.c, request{
		method: http.MethodPut, path: itemPath("/transactions", id), route: "/transactions/:id", body: p,
	})
}

func (g *transactionGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, request{
		method: http.MethodDelete, path: itemPath("/transactions", id), route: "/transactions/:id",
	}, nil)
}

type budgetGateway struct{ c *Client }

func (g *budgetGateway) List(ctx context.Context) ([]core.Budget, error) {
	return call[[]core.Budget](ctx, g.c, request{method: http.MethodGet, path: "/budgets"})
}

func (g *budgetGateway) Create(ctx context.Context, p core.BudgetPayload) (core.Budget, error) {
	return call[core.Budget](ctx, g.c, request{method: http.MethodPost, path: "/budgets", body: p})
}

func (g *budgetGateway) Update(ctx context.Context, id string, p core.BudgetPatch) (core.Budget, error) {
	return call[core.Budget](ctx, g.c, request{
		method: http.MethodPut, path: itemPath("/budgets", id), route: "/budgets/:id", body: p,
	})
}

func (g *budgetGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, request{
		method: http.MethodDelete, path: itemPath("/budgets", id), route: "/budgets/:id",
	}, nil)
}

type goalGateway struct{ c *Client }

func (g *goalGateway) List(ctx context.Context) ([]core.Goal, error) {
	return call[[]core.Goal](ctx, g.c, request{method: http.MethodGet, path: "/goals"})
}

func (g *goalGateway) Create(ctx context.Context, p core.GoalPayload) (core.Goal, error) {
	return call[core.Goal](ctx, g.c, request{method: http.MethodPost, path: "/goals", body: p})
}

func (g *goalGateway) Save(ctx context.Context, id string, amount core.Money) (core.Goal, error) {
	return call[core.Goal](ctx, g.c, request{
		method: http.MethodPatch, path: itemPath("/goals", id) + "/save", route: "/goals/:id/save",
		body: core.SavePayload{Amount: amount},
	})
}

func (g *goalGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, request{
		method: http.MethodDelete, path: itemPath("/goals", id), route: "/goals/:id",
	}, nil)
}

type billGateway struct{ c *Client }

func (g *billGateway) List(ctx context.Context) ([]core.Bill, error) {
	return call[[]core.Bill](ctx, g.c, request{method: http.MethodGet, path: "/bills"})
}

func (g *billGateway) Create(ctx context.Context, p core.BillPayload) (core.Bill, error) {
	return call[core.Bill](ctx, g.c, request{method: http.MethodPost, path: "/bills", body: p})
}

func (g *billGateway) Pay(ctx context.Context, id string) (core.Bill, error) {
	return call[core.Bill](ctx, g.c, request{
		method: http.MethodPatch, path: itemPath("/bills", id) + "/pay", route: "/bills/:id/pay",
	})
}

func (g *billGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, request{
		method: http.MethodDelete, path: itemPath("/bills", id), route: "/bills/:id",
	}, nil)
}

type debtGateway struct{ c *Client }

func (g *debtGateway) List(ctx context.Context) ([]core.Debt, error) {
	return call[[]core.Debt](ctx, g.c, request{method: http.MethodGet, path: "/debts"})
}

func (g *debtGateway) Create(ctx context.Context, p core.DebtPayload) (core.Debt, error) {
	return call[core.Debt](ctx, g.c, request{method: http.MethodPost, path: "/debts", body: p})
}

func (g *debtGateway) Update(ctx context.Context, id string, p core.DebtPatch) (core.Debt, error) {
	return call[core.Debt](ctx, g.c, request{
		method: http.MethodPut, path: itemPath("/debts", id), route: "/debts/:id", body: p,
	})
}

func (g *debtGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, request{
		method: http.MethodDelete, path: itemPath("/debts", id), route: "/debts/:id",
	}, nil)
}

type investmentGateway struct{ c *Client }

func (g *investmentGateway) List(ctx context.Context) ([]core.Investment, error) {
	return call[[]core.Investment](ctx, g.c, request{method: http.MethodGet, path: "/investments"})
}

func (g *investmentGateway) Create(ctx context.Context, p core.InvestmentPayload) (core.Investment, error) {
	return call[core.Investment](ctx, g.c, request{method: http.MethodPost, path: "/investments", body: p})
}

func (g *investmentGateway) Update(ctx context.Context, id string, p core.InvestmentPatch) (core.Investment, error) {
	return call[core.Investment](ctx, g.c, request{
		method: http.MethodPut, path: itemPath("/investments", id), route: "/investments/:id", body: p,
	})
}

func (g *investmentGateway) Delete(ctx context.Context, id string) error {
	return g.c.do(ctx, request{
		method: http.MethodDelete, path: itemPath("/investments", id), route: "/investments/:id",
	}, nil)
}

type analyticsGateway struct{ c *Client }

func (g *analyticsGateway) Dashboard(ctx context.Context) (core.DashboardSnapshot, error) {
	return call[core.DashboardSnapshot](ctx, g.c, request{method: http.MethodGet, path: "/analytics/dashboard"})
}

func (g *analyticsGateway) Summary(ctx context.Context) (core.Summary, error) {
	return call[core.Summary](ctx, g.c, request{method: http.MethodGet, path: "/analytics/summary"})
}

func (g *analyticsGateway) Monthly(ctx context.Context) ([]core.MonthlyPoint, error) {
	return call[[]core.MonthlyPoint](ctx, g.c, request{method: http.MethodGet, path: "/analytics/monthly"})
}

func (g *analyticsGateway) Categories(ctx context.Context) ([]core.CategoryAmount, error) {
	return call[[]core.CategoryAmount](ctx, g.c, request{method: http.MethodGet, path: "/analytics/categories"})
}

func (g *analyticsGateway) Yearly(ctx context.Context) ([]core.YearlyPoint, error) {
	return call[[]core.YearlyPoint](ctx, g.c, request{method: http.MethodGet, path: "/analytics/yearly"})
}
