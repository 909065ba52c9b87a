// Package api is the typed client for the finance REST API. Every resource
// gateway is a thin, stateless mapping onto one shared Client, which owns the
// envelope format, bearer authentication and the error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"finboard/internal/log"
)

const maxBodyBytes = 10 << 20

// TokenSource yields the bearer token to attach, or "" when there is none.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Observer is notified once per request, after it completes.
type Observer interface {
	ObserveRequest(method, route string, status int, err error, elapsed time.Duration)
}

// Client performs envelope-wrapped JSON requests against the API.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	observer Observer
	logger   *log.Logger

	mu        sync.RWMutex
	onExpired func(token string)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every request; a timed-out request surfaces as a NetworkError.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = log.OrDiscard(l).WithComponent(log.ComponentGateway) }
}

// NewClient builds a client for the API rooted at baseURL (e.g. http://host/api).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  TokenFunc(func() string { return "" }),
		logger:  log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnSessionExpired registers the hook run when an authenticated request gets
// a 401. fn receives the token the rejected request carried.
func (c *Client) OnSessionExpired(fn func(token string)) {
	c.mu.Lock()
	c.onExpired = fn
	c.mu.Unlock()
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

type authMode int

const (
	authSession authMode = iota // attach the session token when present
	authNone                    // never attach a token
	authExplicit                // attach request.token
)

type request struct {
	method string
	path   string
	route  string
	query  url.Values
	body   any
	auth   authMode
	token  string
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do sends req and decodes the envelope's data into out (when out is non-nil).
func (c *Client) do(ctx context.Context, req request, out any) (err error) {
	start := time.Now()
	status := 0
	route := req.route
	if route == "" {
		route = req.path
	}
	defer func() {
		if c.observer != nil {
			c.observer.ObserveRequest(req.method, route, status, err, time.Since(start))
		}
	}()

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		b, mErr := json.Marshal(req.body)
		if mErr != nil {
			return fmt.Errorf("encode %s %s body: %w", req.method, req.path, mErr)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	token := ""
	switch req.auth {
	case authSession:
		token = c.tokens.Token()
	case authExplicit:
		token = req.token
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "Request failed without response",
			log.FieldMethod, req.method, log.FieldRoute, route, log.FieldError, err,
			log.FieldErrorType, log.ErrorTypeNetwork)
		return &NetworkError{Method: req.method, Path: req.path, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &NetworkError{Method: req.method, Path: req.path, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServerError{Status: resp.StatusCode}
		if decodeErr == nil {
			se.Message = env.text()
		}
		if resp.StatusCode == http.StatusUnauthorized && token != "" {
			se.SessionExpired = true
		}
		c.logger.WarnContext(ctx, "Request rejected by server",
			log.FieldMethod, req.method, log.FieldRoute, route,
			log.FieldStatusCode, resp.StatusCode, log.FieldError, se.Message,
			log.FieldErrorType, log.ErrorTypeServer)
		if se.SessionExpired && req.auth == authSession {
			c.expired(token)
		}
		return se
	}

	if decodeErr != nil {
		return &DecodeError{Path: req.path, Err: decodeErr}
	}
	if env.Success == nil {
		return &DecodeError{Path: req.path, Err: errors.New("missing success field")}
	}
	if !*env.Success {
		return &ServerError{Status: resp.StatusCode, Message: env.text()}
	}

	c.logger.DebugContext(ctx, "Request completed",
		log.FieldMethod, req.method, log.FieldRoute, route,
		log.FieldStatusCode, resp.StatusCode, log.FieldDuration, time.Since(start).Milliseconds())

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &DecodeError{Path: req.path, Err: errors.New("missing data field")}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &DecodeError{Path: req.path, Err: err}
	}
	return nil
}

func (c *Client) expired(token string) {
	c.mu.RLock()
	fn := c.onExpired
	c.mu.RUnlock()
	if fn != nil {
		fn(token)
	}
}

// call is the generic helper gateways use to fetch one typed value.
func call[T any](ctx context.Context, c *Client, req request) (T, error) {
	var out T
	if err := c.do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
