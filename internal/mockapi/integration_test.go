package mockapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"finboard/internal/api"
	"finboard/internal/core"
	"finboard/internal/finance"
	"finboard/internal/gate"
	"finboard/internal/mockapi"
	"finboard/internal/notify"
	"finboard/internal/session"
)

type harness struct {
	store  *mockapi.Store
	user   core.User
	gw     api.Gateways
	sess   *session.Store
	tokens *session.MemoryTokenStore
	gate   *gate.Gate
	rec    *notify.Recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newWrappedHarness(t, func(next http.Handler) http.Handler { return next })
}

func newWrappedHarness(t *testing.T, wrap func(http.Handler) http.Handler) *harness {
	t.Helper()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	store := mockapi.NewStore(mockapi.WithClock(func() time.Time { return now }), mockapi.WithBcryptCost(bcrypt.MinCost))
	user, err := mockapi.Seed(store)
	require.NoError(t, err)

	srv := mockapi.NewServer(":0", store)
	ts := httptest.NewServer(wrap(srv.Handler))
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Shutdown(context.Background())
	})

	h := &harness{store: store, user: user, tokens: session.NewMemoryTokenStore(""), rec: &notify.Recorder{}}
	client := api.NewClient(ts.URL+"/api", api.WithTokenSource(api.TokenFunc(func() string { return h.sess.Token() })))
	h.gw = api.NewGateways(client)
	h.sess = session.NewStore(h.gw.Auth, h.tokens, session.WithNotifier(h.rec))
	client.OnSessionExpired(h.sess.Expire)
	h.gate = gate.New(h.sess, func() *finance.Cache { return finance.New(h.gw, h.rec) })
	t.Cleanup(h.gate.Close)
	return h
}

func TestClientAgainstMockServer(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.sess.Bootstrap(ctx)
	require.Equal(t, session.Anonymous, h.sess.Status())

	_, err := h.gate.Enter(ctx, "dashboard")
	require.ErrorIs(t, err, gate.ErrRedirect)

	err = h.sess.Login(ctx, mockapi.DemoEmail, "wrong-password")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", api.Message(err))
	assert.Equal(t, session.Anonymous, h.sess.Status())

	require.NoError(t, h.sess.Login(ctx, mockapi.DemoEmail, mockapi.DemoPassword))
	user, ok := h.sess.User()
	require.True(t, ok)
	assert.Equal(t, h.user.ID, user.ID)

	cache, err := h.gate.Enter(ctx, "dashboard")
	require.NoError(t, err)
	require.NoError(t, cache.Refresh(ctx))

	snap, ok := cache.Dashboard()
	require.True(t, ok)
	assert.Equal(t, "13350.00", snap.TotalIncome.String())
	assert.Equal(t, "4519.50", snap.TotalExpense.String())
	assert.Equal(t, "8830.50", snap.TotalBalance.String())
	assert.Len(t, snap.RecentTransactions, 5)
	assert.Len(t, snap.MonthlyTrend, 6)

	assert.Len(t, cache.Transactions(), 13)
	assert.Len(t, cache.Budgets(), 3)
	assert.Len(t, cache.Debts(), 1)
	assert.Len(t, cache.Investments(), 1)

	bills := cache.Bills()
	require.Len(t, bills, 2)
	assert.Equal(t, "Electricity", bills[0].Name)

	paid, err := h.gw.Bills.Pay(ctx, bills[0].ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)

	goals := cache.Goals()
	require.Len(t, goals, 1)
	saved, err := h.gw.Goals.Save(ctx, goals[0].ID, core.MoneyFromCents(5000))
	require.NoError(t, err)
	assert.Equal(t, "1250.00", saved.CurrentAmount.String())

	require.NoError(t, cache.FetchDashboard(ctx))
	snap, _ = cache.Dashboard()
	require.Len(t, snap.UpcomingBills, 1)
	assert.Equal(t, "Internet", snap.UpcomingBills[0].Name)

	require.NoError(t, cache.FetchTransactions(ctx, core.TransactionFilter{Month: "2024-03", Type: core.Income}))
	assert.Len(t, cache.Transactions(), 2)
	assert.Equal(t, []string{"success: " + session.MsgLoggedIn}, h.rec.Messages())
}

func TestRevokedTokenExpiresSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.sess.Login(ctx, mockapi.DemoEmail, mockapi.DemoPassword))
	cache, err := h.gate.Enter(ctx, "goals")
	require.NoError(t, err)
	h.rec.Reset()

	h.store.RevokeAll(h.user.ID)

	// The 401 expires the session, which discards the scope before the
	// response is applied.
	err = cache.FetchGoals(ctx)
	require.ErrorIs(t, err, finance.ErrClosed)
	assert.True(t, cache.Closed())
	assert.Equal(t, session.Anonymous, h.sess.Status())
	assert.Empty(t, h.sess.Token())
	_, _, ok := h.gate.Scope()
	assert.False(t, ok)
	assert.Equal(t, []string{"error: " + session.MsgExpired}, h.rec.Messages())

	_, err = h.gate.Enter(ctx, "goals")
	assert.ErrorIs(t, err, gate.ErrRedirect)
}

// heldRoute parks the first request for path until release is closed.
type heldRoute struct {
	next    http.Handler
	path    string
	once    sync.Once
	arrived chan struct{}
	release chan struct{}
}

func (h *heldRoute) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == h.path {
		h.once.Do(func() {
			close(h.arrived)
			<-h.release
		})
	}
	h.next.ServeHTTP(w, r)
}

func TestLateUnauthorizedKeepsNewerSession(t *testing.T) {
	held := &heldRoute{path: "/api/goals", arrived: make(chan struct{}), release: make(chan struct{})}
	h := newWrappedHarness(t, func(next http.Handler) http.Handler {
		held.next = next
		return held
	})
	ctx := context.Background()

	require.NoError(t, h.sess.Login(ctx, mockapi.DemoEmail, mockapi.DemoPassword))
	demoToken := h.sess.Token()

	errc := make(chan error, 1)
	go func() {
		_, err := h.gw.Goals.List(ctx)
		errc <- err
	}()
	<-held.arrived

	h.sess.Logout(ctx)
	h.sess.Wait()
	require.NoError(t, h.sess.Register(ctx, "Second", "second@example.com", "secret"))
	newToken := h.sess.Token()
	require.NotEqual(t, demoToken, newToken)

	// The parked request still carries the revoked demo token.
	close(held.release)
	err := <-errc
	require.ErrorIs(t, err, api.ErrSessionExpired)

	assert.Equal(t, session.Authenticated, h.sess.Status())
	assert.Equal(t, newToken, h.sess.Token())
	persisted, _ := h.tokens.Load()
	assert.Equal(t, newToken, persisted)
	user, ok := h.sess.User()
	require.True(t, ok)
	assert.Equal(t, "second@example.com", user.Email)
	assert.NotContains(t, h.rec.Messages(), "error: "+session.MsgExpired)
}

func TestLogoutRevokesServerToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.sess.Register(ctx, "Second", "second@example.com", "secret"))
	token := h.sess.Token()
	require.NotEmpty(t, token)
	_, err := h.store.Authenticate(token)
	require.NoError(t, err)

	h.sess.Logout(ctx)
	h.sess.Wait()

	assert.Equal(t, session.Anonymous, h.sess.Status())
	_, err = h.store.Authenticate(token)
	assert.ErrorIs(t, err, mockapi.ErrUnauthorized)
	assert.Equal(t, []string{
		"success: " + session.MsgRegistered,
		"success: " + session.MsgLoggedOut,
	}, h.rec.Messages())
}
