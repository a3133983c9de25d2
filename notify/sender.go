package notify

import (
	"context"

	"quickaid/logger"

	"go.uber.org/zap"
)

// Sender delivers a message to one recipient. accepted reports whether the
// channel took custody of the message, not whether it was delivered.
type Sender interface {
	Send(ctx context.Context, recipient string, msg Message) (accepted bool, err error)
}

// LogSender only logs messages. It stands in for email delivery when no
// provider key is configured, and never reports a message as accepted.
type LogSender struct{}

func (LogSender) Send(_ context.Context, recipient string, msg Message) (bool, error) {
	logger.L.Info("email delivery disabled, confirmation not sent",
		zap.String("recipient", recipient),
		zap.String("subject", msg.Subject))
	return false, nil
}
