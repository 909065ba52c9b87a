package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"finboard/internal/core"
	"finboard/internal/finance"
	"finboard/internal/notify"
)

type report struct {
	summary    core.Summary
	monthly    []core.MonthlyPoint
	categories []core.CategoryAmount
}

// runReports loads the three analytics views together. Reports are not part
// of the resource cache, so the page talks to the gateway directly.
func (a *App) runReports(ctx context.Context, args []string) error {
	if err := parse(a.flags("reports"), args); err != nil {
		return err
	}
	return a.page(ctx, "reports", func(*finance.Cache) error {
		r, err := a.loadReport(ctx)
		if err != nil {
			return err
		}
		a.renderReport(r)
		return nil
	})
}

func (a *App) loadReport(ctx context.Context) (report, error) {
	var r report
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		r.summary, err = a.gw.Analytics.Summary(gctx)
		return err
	})
	g.Go(func() (err error) {
		r.monthly, err = a.gw.Analytics.Monthly(gctx)
		return err
	})
	g.Go(func() (err error) {
		r.categories, err = a.gw.Analytics.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if !isExpired(err) {
			a.notifier.Notify(ctx, notify.Error(errorMessage(err, "Failed to load reports")))
		}
		return report{}, err
	}
	return r, nil
}

func (a *App) renderReport(r report) {
	tw := table(a.out)
	fmt.Fprintf(tw, "Total income\t%s\n", currency(r.summary.TotalIncome))
	fmt.Fprintf(tw, "Total expenses\t%s\n", currency(r.summary.TotalExpense))
	fmt.Fprintf(tw, "Net savings\t%s\n", currency(r.summary.NetSavings()))
	tw.Flush()

	fmt.Fprintln(a.out, "\nMonthly")
	if len(r.monthly) == 0 {
		fmt.Fprintln(a.out, "  No data yet")
	} else {
		tw = table(a.out)
		fmt.Fprintln(tw, "  MONTH\tINCOME\tEXPENSES\tNET")
		for _, m := range r.monthly {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				m.Month, currency(m.Income), currency(m.Expense), currency(m.Income.Sub(m.Expense)))
		}
		tw.Flush()
	}

	fmt.Fprintln(a.out, "\nExpenses by category")
	if len(r.categories) == 0 {
		fmt.Fprintln(a.out, "  No expenses yet")
		return
	}
	tw = table(a.out)
	for _, c := range r.categories {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Category, currency(c.Amount), percent(c.Amount.Percent(r.summary.TotalExpense)))
	}
	tw.Flush()
}
