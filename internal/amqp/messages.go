package amqp

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"finboard/internal/notify"
)

// NotificationMessage is one notification on the wire.
type NotificationMessage struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	DurationMs int       `json:"duration"`
	UserID     string    `json:"user_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewNotificationMessage wraps n with a fresh message id.
func NewNotificationMessage(n notify.Notification, userID string) *NotificationMessage {
	ts := n.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return &NotificationMessage{
		ID:         uuid.NewString(),
		Type:       string(n.Type),
		Message:    n.Message,
		DurationMs: n.DurationMs,
		UserID:     userID,
		Timestamp:  ts,
	}
}

// Notification converts the message back for local sinks.
func (m *NotificationMessage) Notification() notify.Notification {
	return notify.Notification{
		Type:       notify.Type(m.Type),
		Message:    m.Message,
		DurationMs: m.DurationMs,
		Timestamp:  m.Timestamp,
	}
}

func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON decodes a message; one without a message text is
// rejected.
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Message == "" {
		return nil, errors.New("notification message without text")
	}
	return &msg, nil
}
