package mockapi

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"finboard/internal/cache"
	"finboard/internal/log"
	"finboard/internal/metrics"
	"finboard/internal/middleware/ratelimit"
	"finboard/internal/middleware/security"
	"finboard/internal/middleware/trace"
)

// Server serves the finance API under /api plus health and metrics endpoints.
type Server struct {
	http.Server

	store      *Store
	logger     *log.Logger
	structured *log.StructuredLogger
	limiter    *ratelimit.Limiter
	janitor    *cache.Janitor
	detector   *security.Detector
	registry   *prometheus.Registry
	rateConfig ratelimit.Config

	ready        atomic.Bool
	shutdownOnce sync.Once
}

type Option func(*Server)

func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = log.OrDiscard(l).WithComponent(log.ComponentMockAPI) }
}

// WithRateLimit sets the per-client request rate on /api.
func WithRateLimit(cfg ratelimit.Config) Option {
	return func(s *Server) { s.rateConfig = cfg }
}

// WithRegistry exposes metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// NewServer wires routes and middleware around store.
func NewServer(addr string, store *Store, opts ...Option) *Server {
	s := &Server{
		store:      store,
		logger:     log.Discard(),
		detector:   security.NewDetector(),
		rateConfig: ratelimit.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = metrics.NewRegistry()
	}
	s.structured = log.NewStructuredLogger(s.logger)
	s.limiter = ratelimit.NewLimiter(s.rateConfig)
	s.janitor = cache.NewJanitor(s.logger)
	s.janitor.Register(store)
	s.janitor.Start(time.Minute)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	router.Use(metrics.NewHTTPMetrics(s.registry).Middleware)

	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/readyz", s.handleReady).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler(s.registry)).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.limiter.Middleware(s.detector.ExtractClientIP, s.rateLimited))

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireAuth)

	authed.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)
	authed.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	authed.HandleFunc("/transactions", s.handleListTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/transactions", s.handleCreateTransaction).Methods(http.MethodPost)
	authed.HandleFunc("/transactions/{id}", s.handleUpdateTransaction).Methods(http.MethodPut)
	authed.HandleFunc("/transactions/{id}", s.handleDeleteTransaction).Methods(http.MethodDelete)

	authed.HandleFunc("/budgets", s.handleListBudgets).Methods(http.MethodGet)
	authed.HandleFunc("/budgets", s.handleCreateBudget).Methods(http.MethodPost)
	authed.HandleFunc("/budgets/{id}", s.handleUpdateBudget).Methods(http.MethodPut)
	authed.HandleFunc("/budgets/{id}", s.handleDeleteBudget).Methods(http.MethodDelete)

	authed.HandleFunc("/goals", s.handleListGoals).Methods(http.MethodGet)
	authed.HandleFunc("/goals", s.handleCreateGoal).Methods(http.MethodPost)
	authed.HandleFunc("/goals/{id}/save", s.handleSaveGoal).Methods(http.MethodPatch)
	authed.HandleFunc("/goals/{id}", s.handleDeleteGoal).Methods(http.MethodDelete)

	authed.HandleFunc("/bills", s.handleListBills).Methods(http.MethodGet)
	authed.HandleFunc("/bills", s.handleCreateBill).Methods(http.MethodPost)
	authed.HandleFunc("/bills/{id}/pay", s.handlePayBill).Methods(http.MethodPatch)
	authed.HandleFunc("/bills/{id}", s.handleDeleteBill).Methods(http.MethodDelete)

	authed.HandleFunc("/debts", s.handleListDebts).Methods(http.MethodGet)
	authed.HandleFunc("/debts", s.handleCreateDebt).Methods(http.MethodPost)
	authed.HandleFunc("/debts/{id}", s.handleUpdateDebt).Methods(http.MethodPut)
	authed.HandleFunc("/debts/{id}", s.handleDeleteDebt).Methods(http.MethodDelete)

	authed.HandleFunc("/investments", s.handleListInvestments).Methods(http.MethodGet)
	authed.HandleFunc("/investments", s.handleCreateInvestment).Methods(http.MethodPost)
	authed.HandleFunc("/investments/{id}", s.handleUpdateInvestment).Methods(http.MethodPut)
	authed.HandleFunc("/investments/{id}", s.handleDeleteInvestment).Methods(http.MethodDelete)

	authed.HandleFunc("/analytics/dashboard", s.handleDashboard).Methods(http.MethodGet)
	authed.HandleFunc("/analytics/summary", s.handleSummary).Methods(http.MethodGet)
	authed.HandleFunc("/analytics/monthly", s.handleMonthly).Methods(http.MethodGet)
	authed.HandleFunc("/analytics/categories", s.handleCategories).Methods(http.MethodGet)
	authed.HandleFunc("/analytics/yearly", s.handleYearly).Methods(http.MethodGet)

	// Outermost first: tracing sees every request, including rejected ones.
	var handler http.Handler = router
	handler = s.detector.Middleware(s.logger)(handler)
	handler = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(handler)
	handler = trace.NewMiddleware(s.detector.ExtractClientIP, s.logger).Middleware(handler)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.ready.Store(true)
	return s
}

// Store returns the data behind the server.
func (s *Server) Store() *Store { return s.store }

func (s *Server) rateLimited(w http.ResponseWriter, r *http.Request) {
	s.logger.WarnContext(r.Context(), "Rate limit exceeded",
		log.FieldClientIP, s.detector.ExtractClientIP(r), log.FieldPath, r.URL.Path)
	writeError(w, http.StatusTooManyRequests, "Too many requests, please slow down")
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.ready.Load() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Shutdown stops accepting requests, then stops the background sweepers.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.ready.Store(false)
		err = s.Server.Shutdown(ctx)
		s.limiter.Stop()
		s.janitor.Stop()
	})
	return err
}
