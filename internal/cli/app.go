package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"finboard/internal/api"
	"finboard/internal/core"
	"finboard/internal/finance"
	"finboard/internal/gate"
	"finboard/internal/log"
	"finboard/internal/metrics"
	"finboard/internal/notify"
	"finboard/internal/session"
	"finboard/internal/sheets"
)

// ErrNotLoggedIn is returned by protected commands run without a session.
var ErrNotLoggedIn = errors.New("not logged in")

// UsageError is a bad command line. The caller prints it with Usage.
type UsageError struct {
	Command string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// ExporterFunc opens the spreadsheet exporter on first use.
type ExporterFunc func(ctx context.Context) (sheets.TransactionExporter, error)

// Options wires an App. Tokens and APIURL are required.
type Options struct {
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Tokens     session.TokenStore
	// Notifier receives every user-facing message.
	Notifier notify.Notifier
	// Out receives page output, Err flag errors.
	Out        io.Writer
	Err        io.Writer
	Logger     *log.Logger
	Registerer prometheus.Registerer
	LatestOnly bool
	Exporter   ExporterFunc
	Now        func() time.Time
}

// App runs one command per page against a shared session.
type App struct {
	out      io.Writer
	errOut   io.Writer
	logger   *log.Logger
	client   *api.Client
	gw       api.Gateways
	session  *session.Store
	gate     *gate.Gate
	notifier notify.Notifier
	exporter ExporterFunc
	now      func() time.Time
}

func New(opts Options) *App {
	logger := log.OrDiscard(opts.Logger)
	a := &App{
		out:      opts.Out,
		errOut:   opts.Err,
		logger:   logger.WithComponent(log.ComponentCLI),
		notifier: notify.OrDiscard(opts.Notifier),
		exporter: opts.Exporter,
		now:      opts.Now,
	}
	if a.out == nil {
		a.out = io.Discard
	}
	if a.errOut == nil {
		a.errOut = io.Discard
	}
	if a.now == nil {
		a.now = time.Now
	}

	clientOpts := []api.Option{
		api.WithLogger(logger),
		api.WithTokenSource(api.TokenFunc(func() string { return a.session.Token() })),
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(opts.HTTPClient))
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, api.WithTimeout(opts.Timeout))
	}
	if opts.Registerer != nil {
		clientOpts = append(clientOpts, api.WithObserver(metrics.NewGatewayMetrics(opts.Registerer)))
	}
	a.client = api.NewClient(opts.APIURL, clientOpts...)
	a.gw = api.NewGateways(a.client)

	a.session = session.NewStore(a.gw.Auth, opts.Tokens,
		session.WithNotifier(a.notifier), session.WithLogger(logger))
	a.client.OnSessionExpired(a.session.Expire)

	cacheOpts := []finance.Option{finance.WithLogger(logger)}
	if opts.LatestOnly {
		cacheOpts = append(cacheOpts, finance.WithLatestOnly())
	}
	a.gate = gate.New(a.session, func() *finance.Cache {
		return finance.New(a.gw, a.notifier, cacheOpts...)
	}, gate.WithLogger(logger))
	return a
}

// Session exposes the session store, mainly for tests and status output.
func (a *App) Session() *session.Store { return a.session }

// Close stops following the session and waits for background logout calls.
func (a *App) Close() {
	a.gate.Close()
	a.session.Wait()
}

type command struct {
	name    string
	summary string
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{name: "login", summary: "sign in: --email --password", run: (*App).runLogin},
	{name: "register", summary: "create an account: --name --email --password", run: (*App).runRegister},
	{name: "logout", summary: "sign out", run: (*App).runLogout},
	{name: "whoami", summary: "show the signed-in user", run: (*App).runWhoami},
	{name: "dashboard", summary: "balance, recent transactions and upcoming bills", run: (*App).runDashboard},
	{name: "transactions", summary: "list | add | delete <id>", run: (*App).runTransactions},
	{name: "budgets", summary: "list | add | update <id> | delete <id>", run: (*App).runBudgets},
	{name: "goals", summary: "list | add | save <id> | delete <id>", run: (*App).runGoals},
	{name: "bills", summary: "list | add | pay <id> | delete <id>", run: (*App).runBills},
	{name: "debts", summary: "list | add | update <id> | delete <id>", run: (*App).runDebts},
	{name: "investments", summary: "list | add | update <id> | delete <id>", run: (*App).runInvestments},
	{name: "reports", summary: "income, expenses and savings analytics", run: (*App).runReports},
	{name: "export", summary: "append a month of transactions to the spreadsheet: --month YYYY-MM", run: (*App).runExport},
}

// Usage writes the command list to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: finboard <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", c.name, c.summary)
	}
}

// Run resolves the persisted session, then runs the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		Usage(a.out)
		return nil
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		a.session.Bootstrap(ctx)
		a.logger.DebugContext(ctx, "Running command", "command", c.name, log.FieldStatus, a.session.Status().String())
		return c.run(a, ctx, args[1:])
	}
	return &UsageError{Err: fmt.Errorf("unknown command %q", args[0])}
}

// page opens a fresh scope for route, runs fn against it and leaves.
func (a *App) page(ctx context.Context, route string, fn func(scope *finance.Cache) error) error {
	scope, err := a.gate.Enter(ctx, route)
	if err != nil {
		if errors.Is(err, gate.ErrRedirect) {
			fmt.Fprintln(a.out, "Not logged in. Run: finboard login --email <email> --password <password>")
			return ErrNotLoggedIn
		}
		return err
	}
	defer a.gate.Leave()
	return fn(scope)
}

// mutate runs one write and reports its outcome. Expired sessions are
// reported by the session store, not here.
func (a *App) mutate(ctx context.Context, success, fallback string, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		if !isExpired(err) {
			a.notifier.Notify(ctx, notify.Error(errorMessage(err, fallback)))
		}
		a.logger.DebugContext(ctx, "Mutation failed", log.FieldError, err)
		return err
	}
	a.notifier.Notify(ctx, notify.Success(success))
	return nil
}

func isExpired(err error) bool {
	return errors.Is(err, api.ErrSessionExpired)
}

func errorMessage(err error, fallback string) string {
	if msg, ok := core.ValidationMessage(err); ok {
		return msg
	}
	return api.MessageOr(err, fallback)
}

// subcommand splits a leading verb off args, defaulting to "list".
func subcommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "list", args
	}
	return args[0], args[1:]
}
