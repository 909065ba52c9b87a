// Package notify carries user-facing notifications (the terminal's toasts)
// from the state containers to whatever sinks the process wires up.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"finboard/internal/log"
)

// Type represents the type of notification to display.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Notification is one transient message for the user.
type Notification struct {
	Type       Type      `json:"type"`
	Message    string    `json:"message"`
	DurationMs int       `json:"duration"`
	Timestamp  time.Time `json:"timestamp"`
}

func newNotification(t Type, msg string, durationMs int) Notification {
	return Notification{Type: t, Message: msg, DurationMs: durationMs, Timestamp: time.Now()}
}

// Success is a convenience constructor for success notifications.
func Success(msg string) Notification { return newNotification(TypeSuccess, msg, 3000) }

// Error is a convenience constructor for error notifications.
func Error(msg string) Notification { return newNotification(TypeError, msg, 5000) }

func Warning(msg string) Notification { return newNotification(TypeWarning, msg, 4000) }

func Info(msg string) Notification { return newNotification(TypeInfo, msg, 3000) }

// Notifier delivers notifications. Implementations must not block for long;
// they are called from the state containers.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Notifier = Func(func(context.Context, Notification) {})

// OrDiscard returns n, or Discard when n is nil.
func OrDiscard(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return n
}

// Multi fans a notification out to several sinks in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(ctx, n)
		}
	}
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

// All returns a copy of everything recorded so far.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Messages returns "type: message" strings, handy in assertions.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, fmt.Sprintf("%s: %s", n.Type, n.Message))
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}

// Writer prints notifications as single lines, e.g. "✓ Welcome back!".
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Notify(_ context.Context, n Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.w, "%s %s\n", symbol(n.Type), n.Message)
}

func symbol(t Type) string {
	switch t {
	case TypeSuccess:
		return "✓"
	case TypeError:
		return "✗"
	case TypeWarning:
		return "!"
	default:
		return "i"
	}
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: log.OrDiscard(logger).WithComponent(log.ComponentNotify)}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	args := []any{"type", string(n.Type), "message", n.Message}
	if n.Type == TypeError {
		l.logger.WarnContext(ctx, "Notification", args...)
		return
	}
	l.logger.DebugContext(ctx, "Notification", args...)
}
