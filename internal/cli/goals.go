package cli

import (
	"context"
	"fmt"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runGoals(ctx context.Context, args []string) error {
	sub, args := subcommand(args)
	switch sub {
	case "list":
		if err := parse(a.flags("goals"), args); err != nil {
			return err
		}
		return a.page(ctx, "goals", a.refetchGoals(ctx))
	case "add":
		return a.addGoal(ctx, args)
	case "save":
		fs := a.flags("goals save")
		amount := fs.String("amount", "", "amount to put aside")
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		return a.page(ctx, "goals", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Savings added", "Failed to add savings", func(ctx context.Context) error {
				m, err := amountArg(*amount)
				if err != nil {
					return err
				}
				if err := (core.SavePayload{Amount: m}).Validate(); err != nil {
					return err
				}
				_, err = a.gw.Goals.Save(ctx, id, m)
				return err
			}); err != nil {
				return err
			}
			return a.refetchGoals(ctx)(scope)
		})
	case "delete":
		fs := a.flags("goals delete")
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		return a.page(ctx, "goals", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Goal deleted", "Failed to delete goal", func(ctx context.Context) error {
				return a.gw.Goals.Delete(ctx, id)
			}); err != nil {
				return err
			}
			return a.refetchGoals(ctx)(scope)
		})
	default:
		return &UsageError{Command: "goals", Err: fmt.Errorf("unknown action %q", sub)}
	}
}

func (a *App) addGoal(ctx context.Context, args []string) error {
	fs := a.flags("goals add")
	name := fs.String("name", "", "what you are saving for")
	target := fs.String("target", "", "target amount")
	date := fs.String("date", "", "target date YYYY-MM-DD")
	current := fs.String("current", "", "amount already saved")
	if err := parse(fs, args); err != nil {
		return err
	}
	set := visited(fs)

	return a.page(ctx, "goals", func(scope *finance.Cache) error {
		if err := a.mutate(ctx, "Goal created", "Failed to create goal", func(ctx context.Context) error {
			m, err := amountArg(*target)
			if err != nil {
				return err
			}
			d, err := dateArg(*date)
			if err != nil {
				return err
			}
			p := core.GoalPayload{Name: *name, TargetAmount: m, TargetDate: d}
			if set["current"] {
				c, err := core.ParseMoney(*current)
				if err != nil {
					return err
				}
				p.CurrentAmount = &c
			}
			if err := p.Validate(); err != nil {
				return err
			}
			_, err = a.gw.Goals.Create(ctx, p)
			return err
		}); err != nil {
			return err
		}
		return a.refetchGoals(ctx)(scope)
	})
}

func (a *App) refetchGoals(ctx context.Context) func(*finance.Cache) error {
	return func(scope *finance.Cache) error {
		if err := scope.FetchGoals(ctx); err != nil {
			return err
		}
		goals := scope.Goals()
		if len(goals) == 0 {
			fmt.Fprintln(a.out, "No goals yet")
			return nil
		}
		tw := table(a.out)
		fmt.Fprintln(tw, "ID\tNAME\tSAVED\tTARGET\tBY\tPROGRESS")
		for _, g := range goals {
			pct := core.GoalProgress(g)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s %s\n",
				g.ID, g.Name, currency(g.CurrentAmount), currency(g.TargetAmount),
				core.FormatDate(g.TargetDate), bar(pct), percent(pct))
		}
		return tw.Flush()
	}
}
