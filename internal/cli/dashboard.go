package cli

import (
	"context"
	"fmt"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runDashboard(ctx context.Context, args []string) error {
	if err := parse(a.flags("dashboard"), args); err != nil {
		return err
	}
	return a.page(ctx, "dashboard", func(scope *finance.Cache) error {
		if err := scope.FetchDashboard(ctx); err != nil {
			return err
		}
		snap, _ := scope.Dashboard()
		a.renderDashboard(snap)
		return nil
	})
}

func (a *App) renderDashboard(d core.DashboardSnapshot) {
	tw := table(a.out)
	fmt.Fprintf(tw, "Total balance\t%s\n", currency(d.TotalBalance))
	fmt.Fprintf(tw, "Income\t%s\n", currency(d.TotalIncome))
	fmt.Fprintf(tw, "Expenses\t%s\n", currency(d.TotalExpense))
	fmt.Fprintf(tw, "Upcoming bills\t%d\n", d.UnpaidCount())
	tw.Flush()

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Recent transactions")
	if len(d.RecentTransactions) == 0 {
		fmt.Fprintln(a.out, "  No transactions yet")
	} else {
		tw = table(a.out)
		for _, t := range d.RecentTransactions {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", core.FormatShortDate(t.Date), t.Description, t.Category, signedAmount(t))
		}
		tw.Flush()
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Upcoming bills")
	if len(d.UpcomingBills) == 0 {
		fmt.Fprintln(a.out, "  No upcoming bills")
		return
	}
	tw = table(a.out)
	for _, b := range d.UpcomingBills {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", b.Name, core.FormatDate(b.DueDate), currency(b.Amount), billStatus(b))
	}
	tw.Flush()
}
