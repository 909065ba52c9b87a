package cli

import (
	"context"
	"errors"
	"fmt"

	"finboard/internal/core"
	"finboard/internal/finance"
	"finboard/internal/log"
	"finboard/internal/notify"
)

// ErrNoExporter is returned by export when no spreadsheet backend is wired.
var ErrNoExporter = errors.New("no export backend configured")

// runExport appends one month of transactions to the spreadsheet.
func (a *App) runExport(ctx context.Context, args []string) error {
	fs := a.flags("export")
	month := fs.String("month", a.now().Format(core.MonthLayout), "month to export (YYYY-MM)")
	if err := parse(fs, args); err != nil {
		return err
	}
	m, err := monthArg(*month)
	if err != nil {
		return &UsageError{Command: "export", Err: err}
	}
	if a.exporter == nil {
		return ErrNoExporter
	}

	return a.page(ctx, "transactions", func(scope *finance.Cache) error {
		if err := scope.FetchTransactions(ctx, core.TransactionFilter{Month: m}); err != nil {
			return err
		}
		txs := scope.Transactions()
		if len(txs) == 0 {
			a.notifier.Notify(ctx, notify.Info("No transactions to export"))
			return nil
		}

		exporter, err := a.exporter(ctx)
		if err != nil {
			a.notifier.Notify(ctx, notify.Error("Export backend unavailable"))
			return fmt.Errorf("open exporter: %w", err)
		}
		res, err := exporter.Export(ctx, txs)
		if err != nil {
			a.notifier.Notify(ctx, notify.Error("Export failed"))
			return err
		}

		a.logger.InfoContext(ctx, "Exported transactions",
			log.FieldOperation, log.OpExport, log.FieldCount, res.Rows, log.FieldMonth, m)
		for _, r := range res.Ranges {
			fmt.Fprintln(a.out, r)
		}
		a.notifier.Notify(ctx, notify.Success(fmt.Sprintf("Exported %d transactions", res.Rows)))
		return nil
	})
}
