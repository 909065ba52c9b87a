package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"finboard/internal/core"
)

const barWidth = 20

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func currency(m core.Money) string { return core.FormatCurrency(m) }

// signedAmount renders a transaction amount with "+" for income and "-" for expenses.
func signedAmount(t core.Transaction) string {
	if t.Type == core.Expense {
		return "-" + currency(t.Amount)
	}
	return "+" + currency(t.Amount)
}

func percent(p float64) string { return fmt.Sprintf("%.0f%%", p) }

// bar draws pct (0-100) as a fixed-width progress bar.
func bar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	filled = max(0, min(filled, barWidth))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func billStatus(b core.Bill) string {
	if b.IsPaid {
		return "Paid"
	}
	return "Due"
}

func (a *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parse parses args and rejects leftover positional arguments.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return &UsageError{Command: fs.Name(), Err: err}
	}
	if fs.NArg() > 0 {
		return &UsageError{Command: fs.Name(), Err: fmt.Errorf("unexpected argument %q", fs.Arg(0))}
	}
	return nil
}

// parseWithID takes the leading id argument, then parses the flags after it.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") || strings.TrimSpace(args[0]) == "" {
		return "", &UsageError{Command: fs.Name(), Err: core.ErrEmptyID}
	}
	return args[0], parse(fs, args[1:])
}

// visited returns the names of the flags set on the command line.
func visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// amountArg parses a money flag. An empty value reads as zero so the payload
// validation reports the missing field.
func amountArg(s string) (core.Money, error) {
	if strings.TrimSpace(s) == "" {
		return core.Money{}, nil
	}
	return core.ParseMoney(s)
}

func dateArg(s string) (core.Date, error) {
	if strings.TrimSpace(s) == "" {
		return core.Date{}, nil
	}
	return core.ParseDate(s)
}

func monthArg(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(core.MonthLayout, s); err != nil {
		return "", errors.New("month must be YYYY-MM")
	}
	return s, nil
}
