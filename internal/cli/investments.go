package cli

import (
	"context"
	"fmt"
	"strings"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runInvestments(ctx context.Context, args []string) error {
	sub, args := subcommand(args)
	switch sub {
	case "list":
		if err := parse(a.flags("investments"), args); err != nil {
			return err
		}
		return a.page(ctx, "investments", a.refetchInvestments(ctx))
	case "add":
		return a.addInvestment(ctx, args)
	case "update":
		return a.updateInvestment(ctx, args)
	case "delete":
		fs := a.flags("investments delete")
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		return a.page(ctx, "investments", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Investment deleted", "Failed to delete investment", func(ctx context.Context) error {
				return a.gw.Investments.Delete(ctx, id)
			}); err != nil {
				return err
			}
			return a.refetchInvestments(ctx)(scope)
		})
	default:
		return &UsageError{Command: "investments", Err: fmt.Errorf("unknown action %q", sub)}
	}
}

func (a *App) addInvestment(ctx context.Context, args []string) error {
	fs := a.flags("investments add")
	name := fs.String("name", "", "holding name")
	kind := fs.String("type", "", "one of: "+strings.Join(core.InvestmentTypes, ", "))
	amount := fs.String("amount", "", "amount invested")
	value := fs.String("value", "", "current value (default: amount)")
	if err := parse(fs, args); err != nil {
		return err
	}
	set := visited(fs)

	return a.page(ctx, "investments", func(scope *finance.Cache) error {
		if err := a.mutate(ctx, "Investment added", "Failed to add investment", func(ctx context.Context) error {
			m, err := amountArg(*amount)
			if err != nil {
				return err
			}
			p := core.InvestmentPayload{Name: *name, Type: *kind, Amount: m}
			if set["value"] {
				v, err := core.ParseMoney(*value)
				if err != nil {
					return err
				}
				p.CurrentValue = &v
			}
			if err := p.Validate(); err != nil {
				return err
			}
			_, err = a.gw.Investments.Create(ctx, p)
			return err
		}); err != nil {
			return err
		}
		return a.refetchInvestments(ctx)(scope)
	})
}

func (a *App) updateInvestment(ctx context.Context, args []string) error {
	fs := a.flags("investments update")
	name := fs.String("name", "", "new name")
	kind := fs.String("type", "", "new type")
	amount := fs.String("amount", "", "new invested amount")
	value := fs.String("value", "", "new current value")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	set := visited(fs)

	return a.page(ctx, "investments", func(scope *finance.Cache) error {
		if err := a.mutate(ctx, "Investment updated", "Failed to update investment", func(ctx context.Context) error {
			var patch core.InvestmentPatch
			if set["name"] {
				patch.Name = name
			}
			if set["type"] {
				patch.Type = kind
			}
			if set["amount"] {
				m, err := core.ParseMoney(*amount)
				if err != nil {
					return err
				}
				patch.Amount = &m
			}
			if set["value"] {
				v, err := core.ParseMoney(*value)
				if err != nil {
					return err
				}
				patch.CurrentValue = &v
			}
			_, err := a.gw.Investments.Update(ctx, id, patch)
			return err
		}); err != nil {
			return err
		}
		return a.refetchInvestments(ctx)(scope)
	})
}

func (a *App) refetchInvestments(ctx context.Context) func(*finance.Cache) error {
	return func(scope *finance.Cache) error {
		if err := scope.FetchInvestments(ctx); err != nil {
			return err
		}
		items := scope.Investments()
		if len(items) == 0 {
			fmt.Fprintln(a.out, "No investments yet")
			return nil
		}
		tw := table(a.out)
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tINVESTED\tVALUE\tGAIN")
		for _, i := range items {
			gain, pct := core.InvestmentGain(i)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s (%s)\n",
				i.ID, i.Name, i.Type, currency(i.Amount), currency(i.CurrentValue), currency(gain), percent(pct))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		invested, value := core.PortfolioTotals(items)
		gain := value.Sub(invested)
		fmt.Fprintf(a.out, "\nInvested %s  Value %s  Gain %s (%s)\n",
			currency(invested), currency(value), currency(gain), percent(gain.Percent(invested)))
		return nil
	}
}
