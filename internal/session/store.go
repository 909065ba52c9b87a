// Package session owns the authentication state of the client: the bearer
// token, the current user and the status derived from them.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"finboard/internal/api"
	"finboard/internal/core"
	"finboard/internal/log"
	"finboard/internal/notify"
)

// Status is the lifecycle position of a session.
type Status int

const (
	// Unresolved: the store was just built and nothing is known yet.
	Unresolved Status = iota
	// Resolving: a persisted token is being checked against the server.
	Resolving
	Authenticated
	Anonymous
)

func (s Status) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Settled reports whether the status is final enough for an access decision.
func (s Status) Settled() bool {
	return s == Authenticated || s == Anonymous
}

// User-facing messages.
const (
	MsgLoggedIn   = "Welcome back!"
	MsgRegistered = "Account created successfully!"
	MsgLoggedOut  = "Logged out"
	MsgExpired    = "Your session has expired. Please log in again."
)

var errMissingToken = errors.New("missing token in auth response")

// Listener is called after every status transition, outside the store's lock.
type Listener func(from, to Status)

// Store is the single owner of session state. It is safe for concurrent use.
type Store struct {
	auth     api.AuthGateway
	tokens   TokenStore
	notifier notify.Notifier
	logger   *log.Logger

	logoutTimeout time.Duration

	// persistMu orders writes to tokens with the transitions that caused
	// them. It is always taken before mu.
	persistMu sync.Mutex
	mu        sync.Mutex
	status    Status
	token     string
	user      *core.User
	epoch     uint64
	listeners map[int]Listener
	nextID    int

	bootOnce   sync.Once
	settled    chan struct{}
	settleOnce sync.Once
	background sync.WaitGroup
}

type Option func(*Store)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = notify.OrDiscard(n) }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = log.OrDiscard(l).WithComponent(log.ComponentSession) }
}

// WithLogoutTimeout bounds the background server logout call.
func WithLogoutTimeout(d time.Duration) Option {
	return func(s *Store) { s.logoutTimeout = d }
}

// NewStore builds an Unresolved store. Call Bootstrap to resolve it.
func NewStore(auth api.AuthGateway, tokens TokenStore, opts ...Option) *Store {
	s := &Store{
		auth:          auth,
		tokens:        tokens,
		notifier:      notify.Discard,
		logger:        log.Discard(),
		logoutTimeout: 10 * time.Second,
		status:        Unresolved,
		listeners:     make(map[int]Listener),
		settled:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status returns the current status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// IsAuthenticated is true exactly when the status is Authenticated.
func (s *Store) IsAuthenticated() bool {
	return s.Status() == Authenticated
}

// User returns the current user, if any.
func (s *Store) User() (core.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return core.User{}, false
	}
	return *s.user, true
}

// Token returns the bearer token for outgoing requests. It satisfies
// api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe registers fn for status transitions and returns its cancel func.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Settled is closed the first time the status becomes Authenticated or Anonymous.
func (s *Store) Settled() <-chan struct{} {
	return s.settled
}

// setStatusLocked records the transition and returns a func that notifies
// listeners; callers run it after releasing the lock.
func (s *Store) setStatusLocked(to Status) func() {
	from := s.status
	if from == to {
		return func() {}
	}
	s.status = to
	if to.Settled() {
		s.settleOnce.Do(func() { close(s.settled) })
	}
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	return func() {
		for _, l := range ls {
			l(from, to)
		}
	}
}

// Bootstrap resolves the initial status from the persisted token. It runs at
// most once per store; later calls return immediately.
func (s *Store) Bootstrap(ctx context.Context) {
	s.bootOnce.Do(func() { s.bootstrap(ctx) })
}

func (s *Store) bootstrap(ctx context.Context) {
	token, err := s.tokens.Load()
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load persisted token", log.FieldError, err,
			log.FieldOperation, log.OpBootstrap)
		token = ""
	}

	s.mu.Lock()
	if s.status != Unresolved {
		// A login or logout got here first.
		s.mu.Unlock()
		return
	}
	if token == "" {
		fire := s.setStatusLocked(Anonymous)
		s.mu.Unlock()
		fire()
		s.logger.DebugContext(ctx, "No persisted session", log.FieldOperation, log.OpBootstrap)
		return
	}
	s.token = token
	epoch := s.epoch
	fire := s.setStatusLocked(Resolving)
	s.mu.Unlock()
	fire()

	user, err := s.auth.Me(ctx)

	s.persistMu.Lock()
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		s.persistMu.Unlock()
		s.logger.DebugContext(ctx, "Discarding stale bootstrap result", log.FieldOperation, log.OpBootstrap)
		return
	}
	if err != nil {
		s.token = ""
		s.user = nil
		s.epoch++
		fire = s.setStatusLocked(Anonymous)
		s.mu.Unlock()
		if cErr := s.tokens.Clear(); cErr != nil {
			s.logger.WarnContext(ctx, "Failed to clear persisted token", log.FieldError, cErr)
		}
		s.persistMu.Unlock()
		fire()
		s.logger.InfoContext(ctx, "Persisted session rejected", log.FieldError, err,
			log.FieldOperation, log.OpBootstrap)
		return
	}
	s.user = &user
	fire = s.setStatusLocked(Authenticated)
	s.mu.Unlock()
	s.persistMu.Unlock()
	fire()
	s.logger.InfoContext(ctx, "Session restored", log.FieldUserID, user.ID, log.FieldOperation, log.OpBootstrap)
}

// Login authenticates with email and password. On failure the session is left
// exactly as it was and the error is returned to the caller.
func (s *Store) Login(ctx context.Context, email, password string) error {
	cr := core.Credentials{Email: email, Password: password}
	if err := cr.ValidateLogin(); err != nil {
		return err
	}
	res, err := s.auth.Login(ctx, cr)
	if err != nil {
		s.logger.InfoContext(ctx, "Login failed", log.FieldError, err, log.FieldOperation, log.OpLogin)
		return err
	}
	if err := s.establish(ctx, res, log.OpLogin); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(MsgLoggedIn))
	return nil
}

// Register creates an account and signs it in.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	cr := core.Credentials{Name: name, Email: email, Password: password}
	if err := cr.ValidateRegister(); err != nil {
		return err
	}
	res, err := s.auth.Register(ctx, cr)
	if err != nil {
		s.logger.InfoContext(ctx, "Registration failed", log.FieldError, err, log.FieldOperation, log.OpRegister)
		return err
	}
	if err := s.establish(ctx, res, log.OpRegister); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(MsgRegistered))
	return nil
}

func (s *Store) establish(ctx context.Context, res core.AuthResult, op string) error {
	if res.Token == "" {
		return &api.DecodeError{Path: "/auth/" + op, Err: errMissingToken}
	}
	user := res.User
	s.persistMu.Lock()
	s.mu.Lock()
	s.token = res.Token
	s.user = &user
	s.epoch++
	fire := s.setStatusLocked(Authenticated)
	s.mu.Unlock()
	if err := s.tokens.Save(res.Token); err != nil {
		// The session still works for this process.
		s.logger.WarnContext(ctx, "Failed to persist token", log.FieldError, err, log.FieldOperation, op)
	}
	s.persistMu.Unlock()
	fire()

	s.logger.InfoContext(ctx, "Session established", log.FieldUserID, user.ID, log.FieldOperation, op)
	return nil
}

// Logout clears the session locally and immediately, then tells the server in
// the background. It never fails.
func (s *Store) Logout(ctx context.Context) {
	s.persistMu.Lock()
	s.mu.Lock()
	token, fire := s.clearLocked()
	s.mu.Unlock()
	if err := s.tokens.Clear(); err != nil {
		s.logger.WarnContext(ctx, "Failed to clear persisted token", log.FieldError, err, log.FieldOperation, log.OpLogout)
	}
	s.persistMu.Unlock()
	fire()
	s.notifier.Notify(ctx, notify.Success(MsgLoggedOut))

	if token == "" {
		return
	}
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.logoutTimeout)
		defer cancel()
		if err := s.auth.Logout(bctx, token); err != nil {
			s.logger.DebugContext(bctx, "Server logout failed", log.FieldError, err, log.FieldOperation, log.OpLogout)
		}
	}()
}

// Expire handles a 401 on an authenticated request sent with token: same
// local effect as Logout without the server call. It is a no-op unless the
// store is Authenticated with that same token, so a late rejection of an
// older session leaves a newer one alone.
func (s *Store) Expire(token string) {
	s.persistMu.Lock()
	s.mu.Lock()
	if s.status != Authenticated || token == "" || token != s.token {
		s.mu.Unlock()
		s.persistMu.Unlock()
		s.logger.Debug("Ignoring rejection of a stale token", log.FieldOperation, log.OpExpire)
		return
	}
	_, fire := s.clearLocked()
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn("Failed to clear persisted token", log.FieldError, err, log.FieldOperation, log.OpExpire)
	}
	s.persistMu.Unlock()
	fire()
	s.logger.Info("Session expired", log.FieldOperation, log.OpExpire)
	s.notifier.Notify(context.Background(), notify.Error(MsgExpired))
}

func (s *Store) clearLocked() (string, func()) {
	token := s.token
	s.token = ""
	s.user = nil
	s.epoch++
	return token, s.setStatusLocked(Anonymous)
}

// Wait blocks until background server calls started by Logout have finished.
func (s *Store) Wait() {
	s.background.Wait()
}
