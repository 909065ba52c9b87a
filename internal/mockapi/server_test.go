package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/middleware/ratelimit"
)

type wireEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T, opts ...Option) (*Server, http.Handler) {
	t.Helper()
	srv := NewServer(":0", newTestStore(t), opts...)
	t.Cleanup(func() { srv.limiter.Stop() })
	return srv, srv.Handler
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, wireEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env wireEnvelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func signUp(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec, env := call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Test", "email": email, "password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	return res.Token
}

func TestAuthFlow(t *testing.T) {
	_, h := newTestServer(t)
	token := signUp(t, h, "flow@example.com")

	rec, env := call(t, h, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"email":"flow@example.com"`)

	rec, env = call(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "flow@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid email or password", env.Error)

	rec, _ = call(t, h, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = call(t, h, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", env.Error)
}

func TestRegisterConflictAndValidation(t *testing.T) {
	_, h := newTestServer(t)
	signUp(t, h, "dup@example.com")

	rec, env := call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Again", "email": "dup@example.com", "password": "secret",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", env.Error)

	rec, env = call(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "x@example.com", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name is required", env.Error)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	_, h := newTestServer(t)

	for _, path := range []string{"/api/transactions", "/api/budgets", "/api/goals", "/api/bills", "/api/debts", "/api/investments", "/api/analytics/dashboard"} {
		rec, env := call(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.False(t, env.Success, path)
	}
}

func TestCollectionsStartEmpty(t *testing.T) {
	_, h := newTestServer(t)
	token := signUp(t, h, "empty@example.com")

	rec, env := call(t, h, http.MethodGet, "/api/goals", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestTransactionEndpoints(t *testing.T) {
	_, h := newTestServer(t)
	token := signUp(t, h, "tx@example.com")

	rec, env := call(t, h, http.MethodPost, "/api/transactions", token, map[string]any{
		"type": "expense", "category": "Food", "amount": 12.5, "description": "Lunch", "date": "2024-03-10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = call(t, h, http.MethodPost, "/api/transactions", token, map[string]any{
		"type": "expense", "category": "Food", "amount": 0, "description": "Free", "date": "2024-03-10",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid amount", env.Error)

	rec, env = call(t, h, http.MethodGet, "/api/transactions?month=2024-02", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = call(t, h, http.MethodGet, "/api/transactions?month=2024-03&type=expense&category=food", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), created.ID)

	rec, env = call(t, h, http.MethodPut, "/api/transactions/"+created.ID, token, map[string]any{"amount": 15})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"amount":15.00`)

	rec, env = call(t, h, http.MethodDelete, "/api/transactions/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Transaction deleted", env.Message)

	rec, env = call(t, h, http.MethodDelete, "/api/transactions/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Transaction not found", env.Error)
}

func TestMalformedBody(t *testing.T) {
	_, h := newTestServer(t)
	token := signUp(t, h, "bad@example.com")

	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(`{"category":`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestBillPayAndGoalSave(t *testing.T) {
	_, h := newTestServer(t)
	token := signUp(t, h, "pay@example.com")

	_, env := call(t, h, http.MethodPost, "/api/bills", token, map[string]any{"name": "Rent", "amount": 1000, "due_date": "2024-04-01"})
	var bill struct {
		ID     string `json:"id"`
		IsPaid bool   `json:"is_paid"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	require.False(t, bill.IsPaid)

	rec, env := call(t, h, http.MethodPatch, "/api/bills/"+bill.ID+"/pay", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	assert.True(t, bill.IsPaid)

	_, env = call(t, h, http.MethodPost, "/api/goals", token, map[string]any{"name": "Car", "target_amount": 5000, "target_date": "2025-01-01"})
	var goal struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &goal))

	call(t, h, http.MethodPatch, "/api/goals/"+goal.ID+"/save", token, map[string]any{"amount": 100})
	rec, env = call(t, h, http.MethodPatch, "/api/goals/"+goal.ID+"/save", token, map[string]any{"amount": 150.25})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"current_amount":250.25`)
}

func TestUnknownRoute(t *testing.T) {
	_, h := newTestServer(t)

	rec, env := call(t, h, http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", env.Error)
}

func TestOperationalEndpoints(t *testing.T) {
	srv, h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	signUp(t, h, "metrics@example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `finboard_http_requests_total{method="POST",route="/api/auth/register",status="201"} 1`)

	srv.ready.Store(false)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRateLimitPerClient(t *testing.T) {
	_, h := newTestServer(t, WithRateLimit(ratelimit.Config{RequestsPerSecond: 1, Burst: 2}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec, _ := call(t, h, http.MethodGet, "/api/goals", "", nil)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)

	// Health checks are not limited.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
