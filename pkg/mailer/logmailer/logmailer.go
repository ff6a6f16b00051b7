// Package logmailer is a mailer.Sender that only logs messages. It is used in
// development and when no mail provider is configured.
package logmailer

import (
	"context"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/mailer"

	"go.uber.org/zap"
)

// Sender logs every message at info level.
type Sender struct{}

var _ mailer.Sender = Sender{}

// Send logs msg.
func (Sender) Send(ctx context.Context, msg mailer.Message) error {
	logger.Info(ctx, "email not sent, log mailer in use",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)

	return nil
}
