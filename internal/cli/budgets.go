package cli

import (
	"context"
	"fmt"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runBudgets(ctx context.Context, args []string) error {
	sub, args := subcommand(args)
	switch sub {
	case "list":
		if err := parse(a.flags("budgets"), args); err != nil {
			return err
		}
		return a.page(ctx, "budgets", a.refetchBudgets(ctx))
	case "add":
		return a.addBudget(ctx, args)
	case "update":
		return a.updateBudget(ctx, args)
	case "delete":
		fs := a.flags("budgets delete")
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		return a.page(ctx, "budgets", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Budget deleted", "Failed to delete budget", func(ctx context.Context) error {
				return a.gw.Budgets.Delete(ctx, id)
			}); err != nil {
				return err
			}
			return a.refetchBudgets(ctx)(scope)
		})
	default:
		return &UsageError{Command: "budgets", Err: fmt.Errorf("unknown action %q", sub)}
	}
}

func (a *App) addBudget(ctx context.Context, args []string) error {
	fs := a.flags("budgets add")
	category := fs.String("category", "", "category the budget caps")
	amount := fs.String("amount", "", "limit per period")
	period := fs.String("period", string(core.Monthly), "weekly, monthly or yearly")
	if err := parse(fs, args); err != nil {
		return err
	}

	return a.page(ctx, "budgets", func(scope *finance.Cache) error {
		if err := a.mutate(ctx, "Budget created", "Failed to create budget", func(ctx context.Context) error {
			m, err := amountArg(*amount)
			if err != nil {
				return err
			}
			p := core.BudgetPayload{Category: *category, Amount: m, Period: core.BudgetPeriod(*period)}
			if err := p.Validate(); err != nil {
				return err
			}
			if !p.Period.IsValid() {
				return core.ErrInvalidPeriod
			}
			_, err = a.gw.Budgets.Create(ctx, p)
			return err
		}); err != nil {
			return err
		}
		return a.refetchBudgets(ctx)(scope)
	})
}

func (a *App) updateBudget(ctx context.Context, args []string) error {
	fs := a.flags("budgets update")
	category := fs.String("category", "", "new category")
	amount := fs.String("amount", "", "new limit")
	period := fs.String("period", "", "new period")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	set := visited(fs)

	return a.page(ctx, "budgets", func(scope *finance.Cache) error {
		if err := a.mutate(ctx, "Budget updated", "Failed to update budget", func(ctx context.Context) error {
			var patch core.BudgetPatch
			if set["category"] {
				patch.Category = category
			}
			if set["amount"] {
				m, err := core.ParseMoney(*amount)
				if err != nil {
					return err
				}
				patch.Amount = &m
			}
			if set["period"] {
				p := core.BudgetPeriod(*period)
				if !p.IsValid() {
					return core.ErrInvalidPeriod
				}
				patch.Period = &p
			}
			_, err := a.gw.Budgets.Update(ctx, id, patch)
			return err
		}); err != nil {
			return err
		}
		return a.refetchBudgets(ctx)(scope)
	})
}

func (a *App) refetchBudgets(ctx context.Context) func(*finance.Cache) error {
	return func(scope *finance.Cache) error {
		if err := scope.FetchBudgets(ctx); err != nil {
			return err
		}
		budgets := scope.Budgets()
		if len(budgets) == 0 {
			fmt.Fprintln(a.out, "No budgets yet")
			return nil
		}
		tw := table(a.out)
		fmt.Fprintln(tw, "ID\tCATEGORY\tPERIOD\tSPENT\tBUDGET\tUSAGE")
		for _, b := range budgets {
			pct, fill := core.BudgetUsage(b)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s %s\n",
				b.ID, b.Category, b.Period, currency(b.Spent), currency(b.Amount), bar(fill), percent(pct))
		}
		return tw.Flush()
	}
}
