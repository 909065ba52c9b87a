package cli

import (
	"context"
	"flag"
	"fmt"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runTransactions(ctx context.Context, args []string) error {
	sub, args := subcommand(args)
	switch sub {
	case "list":
		return a.listTransactions(ctx, args)
	case "add":
		return a.addTransaction(ctx, args)
	case "delete":
		return a.deleteTransaction(ctx, args)
	default:
		return &UsageError{Command: "transactions", Err: fmt.Errorf("unknown action %q", sub)}
	}
}

type filterFlags struct {
	month, kind, category *string
}

func newFilterFlags(fs *flag.FlagSet) filterFlags {
	return filterFlags{
		month:    fs.String("month", "", "only this month (YYYY-MM)"),
		kind:     fs.String("type", "", "income or expense"),
		category: fs.String("category", "", "only this category"),
	}
}

func (f filterFlags) filter() (core.TransactionFilter, error) {
	month, err := monthArg(*f.month)
	if err != nil {
		return core.TransactionFilter{}, err
	}
	kind := core.TransactionType(*f.kind)
	if kind != "" && !kind.IsValid() {
		return core.TransactionFilter{}, core.ErrInvalidTransactionType
	}
	return core.TransactionFilter{Month: month, Type: kind, Category: *f.category}, nil
}

func (a *App) listTransactions(ctx context.Context, args []string) error {
	fs := a.flags("transactions")
	ff := newFilterFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	filter, err := ff.filter()
	if err != nil {
		return &UsageError{Command: "transactions", Err: err}
	}

	return a.page(ctx, "transactions", func(scope *finance.Cache) error {
		if err := scope.FetchTransactions(ctx, filter); err != nil {
			return err
		}
		a.renderTransactions(scope.Transactions())
		return nil
	})
}

func (a *App) addTransaction(ctx context.Context, args []string) error {
	fs := a.flags("transactions add")
	kind := fs.String("type", string(core.Expense), "income or expense")
	category := fs.String("category", "", "category, e.g. Food")
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	description := fs.String("description", "", "what it was")
	date := fs.String("date", "", "YYYY-MM-DD (default today)")
	if err := parse(fs, args); err != nil {
		return err
	}

	return a.page(ctx, "transactions", func(scope *finance.Cache) error {
		var p core.TransactionPayload
		err := a.mutate(ctx, "Transaction added", "Failed to add transaction", func(ctx context.Context) error {
			m, err := amountArg(*amount)
			if err != nil {
				return err
			}
			d, err := dateArg(*date)
			if err != nil {
				return err
			}
			if d.IsZero() {
				now := a.now()
				d = core.NewDate(now.Year(), int(now.Month()), now.Day())
			}
			p = core.TransactionPayload{
				Type: core.TransactionType(*kind), Category: *category, Amount: m,
				Description: *description, Date: d,
			}
			if err := p.Validate(); err != nil {
				return err
			}
			_, err = a.gw.Transactions.Create(ctx, p)
			return err
		})
		if err != nil {
			return err
		}
		return a.refetchTransactions(ctx, scope, core.TransactionFilter{Month: p.Date.MonthKey()})
	})
}

func (a *App) deleteTransaction(ctx context.Context, args []string) error {
	fs := a.flags("transactions delete")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	return a.page(ctx, "transactions", func(scope *finance.Cache) error {
		if err := a.mutate(ctx, "Transaction deleted", "Failed to delete transaction", func(ctx context.Context) error {
			return a.gw.Transactions.Delete(ctx, id)
		}); err != nil {
			return err
		}
		return a.refetchTransactions(ctx, scope, core.TransactionFilter{})
	})
}

func (a *App) refetchTransactions(ctx context.Context, scope *finance.Cache, f core.TransactionFilter) error {
	if err := scope.FetchTransactions(ctx, f); err != nil {
		return err
	}
	a.renderTransactions(scope.Transactions())
	return nil
}

func (a *App) renderTransactions(txs []core.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions found")
		return
	}
	var income, expense core.Money
	tw := table(a.out)
	fmt.Fprintln(tw, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, t := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, core.FormatDate(t.Date), t.Description, t.Category, signedAmount(t))
		if t.Type == core.Expense {
			expense = expense.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}
	tw.Flush()
	fmt.Fprintf(a.out, "\nIncome %s  Expenses %s  Net %s\n",
		currency(income), currency(expense), currency(income.Sub(expense)))
}
