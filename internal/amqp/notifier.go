package amqp

import (
	"context"

	"finboard/internal/log"
	"finboard/internal/notify"
)

// Publisher is satisfied by *Client.
type Publisher interface {
	PublishNotification(ctx context.Context, msg *NotificationMessage) error
}

// Notifier is a notify sink that publishes every notification. Publish
// failures are logged and dropped; the user already saw the notification
// through the local sinks.
type Notifier struct {
	pub    Publisher
	userID func() string
	logger *log.Logger
}

// NewNotifier publishes through pub. userID, when non-nil, tags each message
// with the signed-in user.
func NewNotifier(pub Publisher, userID func() string, logger *log.Logger) *Notifier {
	return &Notifier{
		pub:    pub,
		userID: userID,
		logger: log.OrDiscard(logger).WithComponent(log.ComponentAMQP),
	}
}

func (n *Notifier) Notify(ctx context.Context, note notify.Notification) {
	uid := ""
	if n.userID != nil {
		uid = n.userID()
	}
	msg := NewNotificationMessage(note, uid)
	if err := n.pub.PublishNotification(context.WithoutCancel(ctx), msg); err != nil {
		n.logger.WarnContext(ctx, "Failed to publish notification", log.FieldError, err,
			log.FieldOperation, log.OpPublish)
	}
}
