package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/core"
)

type recordingObserver struct {
	mu     sync.Mutex
	routes []string
	codes  []int
}

func (o *recordingObserver) ObserveRequest(method, route string, status int, err error, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.routes = append(o.routes, method+" "+route)
	o.codes = append(o.codes, status)
}

func newTestClient(t *testing.T, h http.HandlerFunc, token string, opts ...Option) (*Client, Gateways) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithTokenSource(TokenFunc(func() string { return token }))}, opts...)
	c := NewClient(srv.URL+"/api", opts...)
	return c, NewGateways(c)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestListTransactionsDecodesEnvelopeAndPassesFilter(t *testing.T) {
	var gotQuery, gotAuth string
	_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transactions", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"success":true,"data":[{"id":"t1","type":"expense","category":"Food","amount":12.5,"description":"Lunch","date":"2025-01-03"}]}`)
	}, "tok-1")

	items, err := gw.Transactions.List(context.Background(), core.TransactionFilter{Month: "2025-01", Type: core.Expense})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "t1", items[0].ID)
	assert.Equal(t, int64(1250), items[0].Amount.Cents())
	assert.Equal(t, "month=2025-01&type=expense", gotQuery)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusBadRequest, `{"success":false,"message":"Amount is required"}`, "Amount is required"},
		{"error field", http.StatusConflict, `{"success":false,"error":"Email already registered"}`, "Email already registered"},
		{"no body", http.StatusInternalServerError, ``, FallbackMessage},
		{"success false on 200", http.StatusOK, `{"success":false,"message":"Nope"}`, "Nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}, "")

			_, err := gw.Budgets.List(context.Background())
			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, tt.wantMsg, Message(err))
			assert.False(t, errors.Is(err, ErrSessionExpired))
		})
	}
}

func TestUnauthorizedWithTokenExpiresSession(t *testing.T) {
	c, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
	}, "stale")

	var rejected []string
	c.OnSessionExpired(func(token string) { rejected = append(rejected, token) })

	_, err := gw.Goals.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSessionExpired))
	assert.Equal(t, []string{"stale"}, rejected)
}

func TestExpiryHookGetsTokenTheRequestCarried(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid token"})
	}))
	t.Cleanup(srv.Close)

	var (
		mu      sync.Mutex
		current = "first"
	)
	source := TokenFunc(func() string {
		mu.Lock()
		defer mu.Unlock()
		return current
	})
	c := NewClient(srv.URL+"/api", WithTokenSource(source))
	gw := NewGateways(c)

	got := make(chan string, 1)
	c.OnSessionExpired(func(token string) { got <- token })

	errc := make(chan error, 1)
	go func() {
		_, err := gw.Goals.List(context.Background())
		errc <- err
	}()

	<-arrived
	mu.Lock()
	current = "second"
	mu.Unlock()
	close(release)

	require.Error(t, <-errc)
	assert.Equal(t, "first", <-got)
}

func TestNilLoggerOptionIsIgnored(t *testing.T) {
	_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "boom"})
	}, "tok", WithLogger(nil))

	assert.NotPanics(t, func() {
		_, err := gw.Goals.List(context.Background())
		assert.Error(t, err)
	})
}

func TestUnauthorizedLoginIsNotExpiry(t *testing.T) {
	var sawAuth bool
	c, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
	}, "leftover")

	c.OnSessionExpired(func(string) { t.Fatalf("login failure must not expire the session") })

	_, err := gw.Auth.Login(context.Background(), core.Credentials{Email: "a@b.c", Password: "bad"})
	require.Error(t, err)
	assert.False(t, sawAuth)
	assert.False(t, errors.Is(err, ErrSessionExpired))
	assert.Equal(t, "Invalid credentials", Message(err))
}

func TestLogoutSendsExplicitToken(t *testing.T) {
	var gotAuth string
	_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"success":true,"data":null}`)
	}, "")

	require.NoError(t, gw.Auth.Logout(context.Background(), "old-token"))
	assert.Equal(t, "Bearer old-token", gotAuth)
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing success", `{"data":[]}`},
		{"wrong data shape", `{"success":true,"data":{"id":1}}`},
		{"missing data", `{"success":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, tt.body)
			}, "")

			_, err := gw.Debts.List(context.Background())
			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, FallbackMessage, Message(err))
		})
	}
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := NewGateways(NewClient(url))
	_, err := gw.Investments.List(context.Background())
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, FallbackMessage, Message(err))
}

func TestTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
	}, "", WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := gw.Analytics.Dashboard(context.Background())
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestMutationsHitExpectedRoutes(t *testing.T) {
	obs := &recordingObserver{}
	var calls []string
	_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/goals/g1/save":
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 25.0, body["amount"])
			io.WriteString(w, `{"success":true,"data":{"id":"g1","current_amount":125}}`)
		case "/api/bills/b1/pay":
			io.WriteString(w, `{"success":true,"data":{"id":"b1","is_paid":true}}`)
		default:
			io.WriteString(w, `{"success":true,"data":null}`)
		}
	}, "tok", WithObserver(obs))

	ctx := context.Background()
	goal, err := gw.Goals.Save(ctx, "g1", core.MoneyFromCents(2500))
	require.NoError(t, err)
	assert.Equal(t, int64(12500), goal.CurrentAmount.Cents())

	bill, err := gw.Bills.Pay(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, bill.IsPaid)

	require.NoError(t, gw.Transactions.Delete(ctx, "t9"))

	assert.Equal(t, []string{
		"PATCH /api/goals/g1/save",
		"PATCH /api/bills/b1/pay",
		"DELETE /api/transactions/t9",
	}, calls)
	assert.Equal(t, []string{
		"PATCH /goals/:id/save",
		"PATCH /bills/:id/pay",
		"DELETE /transactions/:id",
	}, obs.routes)
	assert.Equal(t, []int{200, 200, 200}, obs.codes)
}

func TestPatchOmitsUnsetFields(t *testing.T) {
	var body map[string]any
	_, gw := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, `{"success":true,"data":{"id":"d1","name":"Card","amount":900,"interest_rate":12}}`)
	}, "tok")

	rate := 12.0
	_, err := gw.Debts.Update(context.Background(), "d1", core.DebtPatch{InterestRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"interest_rate": 12.0}, body)
}
