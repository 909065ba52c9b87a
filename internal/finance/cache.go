// Package finance holds the per-scope cache of the user's financial
// collections. A Cache only ever reads: pages issue mutations against the
// gateways themselves and then call the matching Fetch method to resync.
package finance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"finboard/internal/api"
	"finboard/internal/core"
	"finboard/internal/log"
	"finboard/internal/notify"
)

// Kind names one cached collection.
type Kind string

const (
	KindTransactions Kind = "transactions"
	KindBudgets      Kind = "budgets"
	KindGoals        Kind = "goals"
	KindBills        Kind = "bills"
	KindDebts        Kind = "debts"
	KindInvestments  Kind = "investments"
	KindDashboard    Kind = "dashboard"
)

// Kinds lists every collection in display order.
func Kinds() []Kind {
	return []Kind{KindDashboard, KindTransactions, KindBudgets, KindGoals, KindBills, KindDebts, KindInvestments}
}

// ParseKind accepts the lower-case collection name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", s)
}

var (
	// ErrClosed is returned by fetches that finish after the scope was closed.
	// Nothing was written and nothing was notified.
	ErrClosed = errors.New("finance: cache closed")
	// ErrSuperseded is returned, with WithLatestOnly, by a fetch whose
	// response arrived after a newer fetch of the same collection was issued.
	ErrSuperseded = errors.New("finance: response superseded")
)

type collection[T any] struct {
	value    T
	loaded   bool
	inflight int
	issued   uint64
	lastErr  error
}

// Cache is one protected scope's view of the user's data. The zero value is
// not usable; build one with New. Safe for concurrent use.
type Cache struct {
	gw         api.Gateways
	notifier   notify.Notifier
	logger     *log.Logger
	latestOnly bool

	mu       sync.Mutex
	closed   bool
	txFilter core.TransactionFilter

	transactions collection[[]core.Transaction]
	budgets      collection[[]core.Budget]
	goals        collection[[]core.Goal]
	bills        collection[[]core.Bill]
	debts        collection[[]core.Debt]
	investments  collection[[]core.Investment]
	dashboard    collection[core.DashboardSnapshot]
}

type Option func(*Cache)

// WithLatestOnly discards responses from superseded requests for the same
// collection. Without it the last response to arrive wins.
func WithLatestOnly() Option {
	return func(c *Cache) { c.latestOnly = true }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Cache) { c.logger = log.OrDiscard(l).WithComponent(log.ComponentFinance) }
}

// New builds an empty cache. Nothing is fetched until a Fetch method runs.
func New(gw api.Gateways, notifier notify.Notifier, opts ...Option) *Cache {
	c := &Cache{
		gw:       gw,
		notifier: notify.OrDiscard(notifier),
		logger:   log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close ends the scope. Fetches still in flight finish against the network but
// their results are dropped. Close is idempotent.
func (c *Cache) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Cache) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// fetch runs one load for col. The in-flight counter is raised before the
// request and released in the same critical section that applies the result;
// the deferred release covers panics in load.
func fetch[T any](ctx context.Context, c *Cache, kind Kind, col *collection[T], load func(context.Context) (T, error)) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	col.inflight++
	col.issued++
	gen := col.issued
	c.mu.Unlock()

	released := false
	defer func() {
		if !released {
			c.mu.Lock()
			col.inflight--
			c.mu.Unlock()
		}
	}()

	v, err := load(ctx)

	c.mu.Lock()
	col.inflight--
	released = true
	switch {
	case c.closed:
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Dropping response for closed scope", log.FieldCollection, string(kind))
		return ErrClosed
	case c.latestOnly && gen != col.issued:
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Dropping superseded response", log.FieldCollection, string(kind))
		return ErrSuperseded
	case err != nil:
		col.lastErr = err
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "Fetch failed", log.FieldCollection, string(kind), log.FieldError, err,
			log.FieldOperation, log.OpFetch)
		c.notifier.Notify(ctx, notify.Error(api.Message(err)))
		return err
	default:
		col.value = v
		col.loaded = true
		col.lastErr = nil
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "Fetch complete", log.FieldCollection, string(kind), log.FieldOperation, log.OpFetch)
		return nil
	}
}

// FetchTransactions loads transactions with f passed through as query
// parameters. The filter is remembered for Refresh.
func (c *Cache) FetchTransactions(ctx context.Context, f core.TransactionFilter) error {
	c.mu.Lock()
	c.txFilter = f
	c.mu.Unlock()
	return fetch(ctx, c, KindTransactions, &c.transactions, func(ctx context.Context) ([]core.Transaction, error) {
		return c.gw.Transactions.List(ctx, f)
	})
}

func (c *Cache) FetchBudgets(ctx context.Context) error {
	return fetch(ctx, c, KindBudgets, &c.budgets, c.gw.Budgets.List)
}

func (c *Cache) FetchGoals(ctx context.Context) error {
	return fetch(ctx, c, KindGoals, &c.goals, c.gw.Goals.List)
}

func (c *Cache) FetchBills(ctx context.Context) error {
	return fetch(ctx, c, KindBills, &c.bills, c.gw.Bills.List)
}

func (c *Cache) FetchDebts(ctx context.Context) error {
	return fetch(ctx, c, KindDebts, &c.debts, c.gw.Debts.List)
}

func (c *Cache) FetchInvestments(ctx context.Context) error {
	return fetch(ctx, c, KindInvestments, &c.investments, c.gw.Investments.List)
}

func (c *Cache) FetchDashboard(ctx context.Context) error {
	return fetch(ctx, c, KindDashboard, &c.dashboard, c.gw.Analytics.Dashboard)
}

// Fetch dispatches by kind. Transactions reuse the last filter.
func (c *Cache) Fetch(ctx context.Context, kind Kind) error {
	switch kind {
	case KindTransactions:
		c.mu.Lock()
		f := c.txFilter
		c.mu.Unlock()
		return c.FetchTransactions(ctx, f)
	case KindBudgets:
		return c.FetchBudgets(ctx)
	case KindGoals:
		return c.FetchGoals(ctx)
	case KindBills:
		return c.FetchBills(ctx)
	case KindDebts:
		return c.FetchDebts(ctx)
	case KindInvestments:
		return c.FetchInvestments(ctx)
	case KindDashboard:
		return c.FetchDashboard(ctx)
	default:
		return fmt.Errorf("unknown collection %q", kind)
	}
}

// Refresh fetches the given collections concurrently, or all of them when none
// are named. Each fetch applies its own result; the first error is returned.
func (c *Cache) Refresh(ctx context.Context, kinds ...Kind) error {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	var g errgroup.Group
	for _, k := range kinds {
		g.Go(func() error { return c.Fetch(ctx, k) })
	}
	return g.Wait()
}

func (c *Cache) Transactions() []core.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Transaction(nil), c.transactions.value...)
}

func (c *Cache) Budgets() []core.Budget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Budget(nil), c.budgets.value...)
}

func (c *Cache) Goals() []core.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Goal(nil), c.goals.value...)
}

func (c *Cache) Bills() []core.Bill {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Bill(nil), c.bills.value...)
}

func (c *Cache) Debts() []core.Debt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Debt(nil), c.debts.value...)
}

func (c *Cache) Investments() []core.Investment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Investment(nil), c.investments.value...)
}

// Dashboard returns the last snapshot and whether one was ever loaded.
func (c *Cache) Dashboard() (core.DashboardSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dashboard.value.Clone(), c.dashboard.loaded
}

// TransactionFilter returns the filter of the most recent FetchTransactions.
func (c *Cache) TransactionFilter() core.TransactionFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.txFilter
}

// Loading reports whether any fetch of kind is in flight.
func (c *Cache) Loading(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	inflight, _, _ := c.statusLocked(kind)
	return inflight > 0
}

// LastError is the error of the most recent failed fetch of kind, cleared by
// the next successful one.
func (c *Cache) LastError(kind Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _, err := c.statusLocked(kind)
	return err
}

// Loaded reports whether kind was fetched successfully at least once.
func (c *Cache) Loaded(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, loaded, _ := c.statusLocked(kind)
	return loaded
}

func (c *Cache) statusLocked(kind Kind) (int, bool, error) {
	switch kind {
	case KindTransactions:
		return c.transactions.inflight, c.transactions.loaded, c.transactions.lastErr
	case KindBudgets:
		return c.budgets.inflight, c.budgets.loaded, c.budgets.lastErr
	case KindGoals:
		return c.goals.inflight, c.goals.loaded, c.goals.lastErr
	case KindBills:
		return c.bills.inflight, c.bills.loaded, c.bills.lastErr
	case KindDebts:
		return c.debts.inflight, c.debts.loaded, c.debts.lastErr
	case KindInvestments:
		return c.investments.inflight, c.investments.loaded, c.investments.lastErr
	case KindDashboard:
		return c.dashboard.inflight, c.dashboard.loaded, c.dashboard.lastErr
	}
	return 0, false, nil
}

// State is a point-in-time copy of the whole cache.
type State struct {
	Transactions []core.Transaction
	Budgets      []core.Budget
	Goals        []core.Goal
	Bills        []core.Bill
	Debts        []core.Debt
	Investments  []core.Investment
	Dashboard    *core.DashboardSnapshot
	Loading      map[Kind]bool
	Errors       map[Kind]error
}

// Snapshot copies every collection and flag under one lock.
func (c *Cache) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Transactions: append([]core.Transaction(nil), c.transactions.value...),
		Budgets:      append([]core.Budget(nil), c.budgets.value...),
		Goals:        append([]core.Goal(nil), c.goals.value...),
		Bills:        append([]core.Bill(nil), c.bills.value...),
		Debts:        append([]core.Debt(nil), c.debts.value...),
		Investments:  append([]core.Investment(nil), c.investments.value...),
		Loading:      make(map[Kind]bool),
		Errors:       make(map[Kind]error),
	}
	if c.dashboard.loaded {
		d := c.dashboard.value.Clone()
		s.Dashboard = &d
	}
	for _, k := range Kinds() {
		inflight, _, err := c.statusLocked(k)
		s.Loading[k] = inflight > 0
		if err != nil {
			s.Errors[k] = err
		}
	}
	return s
}
