// Package gate decides whether protected commands may run and owns the
// finance scope they run against.
package gate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"finboard/internal/finance"
	"finboard/internal/log"
	"finboard/internal/session"
)

// Decision is the outcome of an access check.
type Decision int

const (
	Allow Decision = iota
	// Pending: the session is still being resolved. Show a placeholder, never
	// a redirect.
	Pending
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// DefaultLoginRoute is where anonymous users are sent.
const DefaultLoginRoute = "login"

// ErrRedirect matches every RedirectError.
var ErrRedirect = errors.New("authentication required")

// RedirectError tells the caller to send the user to Target.
type RedirectError struct {
	Target string
	From   string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("%s: %s requires login, go to %s", ErrRedirect, e.From, e.Target)
}

func (e *RedirectError) Is(target error) bool { return target == ErrRedirect }

// Session is the part of session.Store the gate depends on.
type Session interface {
	Status() session.Status
	Settled() <-chan struct{}
	Subscribe(fn session.Listener) func()
}

// ScopeFactory builds an empty finance cache for one protected visit.
type ScopeFactory func() *finance.Cache

type Gate struct {
	sess       Session
	newScope   ScopeFactory
	loginRoute string
	logger     *log.Logger

	mu          sync.Mutex
	scope       *finance.Cache
	route       string
	unsubscribe func()
}

type Option func(*Gate)

func WithLoginRoute(route string) Option {
	return func(g *Gate) { g.loginRoute = route }
}

func WithLogger(l *log.Logger) Option {
	return func(g *Gate) { g.logger = log.OrDiscard(l).WithComponent(log.ComponentGate) }
}

// New subscribes to sess. Any transition away from Authenticated discards the
// current scope. Call Close to unsubscribe.
func New(sess Session, newScope ScopeFactory, opts ...Option) *Gate {
	g := &Gate{
		sess:       sess,
		newScope:   newScope,
		loginRoute: DefaultLoginRoute,
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.unsubscribe = sess.Subscribe(g.onTransition)
	return g
}

func (g *Gate) onTransition(from, to session.Status) {
	if to == session.Authenticated {
		return
	}
	if g.discard() {
		g.logger.Info("Scope discarded on session change",
			log.FieldFromStatus, from.String(), log.FieldStatus, to.String())
	}
}

// Check maps the current session status to a decision.
func (g *Gate) Check() Decision {
	switch g.sess.Status() {
	case session.Authenticated:
		return Allow
	case session.Anonymous:
		return Redirect
	default:
		return Pending
	}
}

// Enter opens a fresh, empty scope for route. While the session is still
// resolving it waits for it to settle, bounded by ctx. Anonymous sessions get a
// *RedirectError.
func (g *Gate) Enter(ctx context.Context, route string) (*finance.Cache, error) {
	d := g.Check()
	if d == Pending {
		g.logger.DebugContext(ctx, "Waiting for session", log.FieldRoute, route)
		select {
		case <-g.sess.Settled():
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for session: %w", ctx.Err())
		}
		d = g.Check()
	}
	if d != Allow {
		g.discard()
		g.logger.InfoContext(ctx, "Redirecting anonymous user", log.FieldRoute, route)
		return nil, &RedirectError{Target: g.loginRoute, From: route}
	}

	scope := g.newScope()
	g.mu.Lock()
	prev := g.scope
	g.scope = scope
	g.route = route
	g.mu.Unlock()
	if prev != nil {
		prev.Close()
	}

	// A logout may have landed between Check and the swap.
	if g.sess.Status() != session.Authenticated {
		g.discard()
		return nil, &RedirectError{Target: g.loginRoute, From: route}
	}
	g.logger.DebugContext(ctx, "Entered protected route", log.FieldRoute, route)
	return scope, nil
}

// Leave discards the current scope, if any.
func (g *Gate) Leave() {
	g.discard()
}

// Scope returns the open scope and its route.
func (g *Gate) Scope() (*finance.Cache, string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.scope == nil {
		return nil, "", false
	}
	return g.scope, g.route, true
}

// Close discards the scope and stops following the session.
func (g *Gate) Close() {
	g.discard()
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

func (g *Gate) discard() bool {
	g.mu.Lock()
	scope := g.scope
	g.scope = nil
	g.route = ""
	g.mu.Unlock()
	if scope == nil {
		return false
	}
	scope.Close()
	return true
}
