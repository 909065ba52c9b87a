package cli

import (
	"context"
	"fmt"
	"strconv"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runDebts(ctx context.Context, args []string) error {
	sub, args := subcommand(args)
	switch sub {
	case "list":
		if err := parse(a.flags("debts"), args); err != nil {
			return err
		}
		return a.page(ctx, "debts", a.refetchDebts(ctx))
	case "add":
		fs := a.flags("debts add")
		name := fs.String("name", "", "lender or loan name")
		amount := fs.String("amount", "", "outstanding amount")
		rate := fs.Float64("rate", 0, "annual interest rate in percent")
		if err := parse(fs, args); err != nil {
			return err
		}
		return a.page(ctx, "debts", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Debt added", "Failed to add debt", func(ctx context.Context) error {
				m, err := amountArg(*amount)
				if err != nil {
					return err
				}
				p := core.DebtPayload{Name: *name, Amount: m, InterestRate: *rate}
				if err := p.Validate(); err != nil {
					return err
				}
				_, err = a.gw.Debts.Create(ctx, p)
				return err
			}); err != nil {
				return err
			}
			return a.refetchDebts(ctx)(scope)
		})
	case "update":
		fs := a.flags("debts update")
		name := fs.String("name", "", "new name")
		amount := fs.String("amount", "", "new outstanding amount")
		rate := fs.Float64("rate", 0, "new interest rate")
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		set := visited(fs)
		return a.page(ctx, "debts", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Debt updated", "Failed to update debt", func(ctx context.Context) error {
				var patch core.DebtPatch
				if set["name"] {
					patch.Name = name
				}
				if set["amount"] {
					m, err := core.ParseMoney(*amount)
					if err != nil {
						return err
					}
					patch.Amount = &m
				}
				if set["rate"] {
					patch.InterestRate = rate
				}
				_, err := a.gw.Debts.Update(ctx, id, patch)
				return err
			}); err != nil {
				return err
			}
			return a.refetchDebts(ctx)(scope)
		})
	case "delete":
		fs := a.flags("debts delete")
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		return a.page(ctx, "debts", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Debt deleted", "Failed to delete debt", func(ctx context.Context) error {
				return a.gw.Debts.Delete(ctx, id)
			}); err != nil {
				return err
			}
			return a.refetchDebts(ctx)(scope)
		})
	default:
		return &UsageError{Command: "debts", Err: fmt.Errorf("unknown action %q", sub)}
	}
}

func (a *App) refetchDebts(ctx context.Context) func(*finance.Cache) error {
	return func(scope *finance.Cache) error {
		if err := scope.FetchDebts(ctx); err != nil {
			return err
		}
		debts := scope.Debts()
		if len(debts) == 0 {
			fmt.Fprintln(a.out, "No debts recorded")
			return nil
		}
		tw := table(a.out)
		fmt.Fprintln(tw, "ID\tNAME\tAMOUNT\tRATE")
		for _, d := range debts {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s%%\n",
				d.ID, d.Name, currency(d.Amount), strconv.FormatFloat(d.InterestRate, 'f', -1, 64))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "\nTotal debt %s\n", currency(core.TotalDebt(debts)))
		return nil
	}
}
