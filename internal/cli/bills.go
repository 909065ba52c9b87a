package cli

import (
	"context"
	"fmt"

	"finboard/internal/core"
	"finboard/internal/finance"
)

func (a *App) runBills(ctx context.Context, args []string) error {
	sub, args := subcommand(args)
	switch sub {
	case "list":
		if err := parse(a.flags("bills"), args); err != nil {
			return err
		}
		return a.page(ctx, "bills", a.refetchBills(ctx))
	case "add":
		fs := a.flags("bills add")
		name := fs.String("name", "", "bill name")
		amount := fs.String("amount", "", "amount due")
		due := fs.String("due", "", "due date YYYY-MM-DD")
		if err := parse(fs, args); err != nil {
			return err
		}
		return a.page(ctx, "bills", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, "Bill added", "Failed to add bill", func(ctx context.Context) error {
				m, err := amountArg(*amount)
				if err != nil {
					return err
				}
				d, err := dateArg(*due)
				if err != nil {
					return err
				}
				p := core.BillPayload{Name: *name, Amount: m, DueDate: d}
				if err := p.Validate(); err != nil {
					return err
				}
				_, err = a.gw.Bills.Create(ctx, p)
				return err
			}); err != nil {
				return err
			}
			return a.refetchBills(ctx)(scope)
		})
	case "pay", "delete":
		fs := a.flags("bills " + sub)
		id, err := parseWithID(fs, args)
		if err != nil {
			return err
		}
		success, fallback := "Bill marked as paid", "Failed to mark bill as paid"
		op := func(ctx context.Context) error {
			_, err := a.gw.Bills.Pay(ctx, id)
			return err
		}
		if sub == "delete" {
			success, fallback = "Bill deleted", "Failed to delete bill"
			op = func(ctx context.Context) error { return a.gw.Bills.Delete(ctx, id) }
		}
		return a.page(ctx, "bills", func(scope *finance.Cache) error {
			if err := a.mutate(ctx, success, fallback, op); err != nil {
				return err
			}
			return a.refetchBills(ctx)(scope)
		})
	default:
		return &UsageError{Command: "bills", Err: fmt.Errorf("unknown action %q", sub)}
	}
}

func (a *App) refetchBills(ctx context.Context) func(*finance.Cache) error {
	return func(scope *finance.Cache) error {
		if err := scope.FetchBills(ctx); err != nil {
			return err
		}
		bills := scope.Bills()
		if len(bills) == 0 {
			fmt.Fprintln(a.out, "No bills yet")
			return nil
		}
		tw := table(a.out)
		fmt.Fprintln(tw, "ID\tNAME\tDUE\tAMOUNT\tSTATUS")
		for _, b := range bills {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				b.ID, b.Name, core.FormatDate(b.DueDate), currency(b.Amount), billStatus(b))
		}
		return tw.Flush()
	}
}
