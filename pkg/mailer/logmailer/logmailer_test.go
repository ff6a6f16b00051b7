package logmailer_test

import (
	"context"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/mailer"
	"labelchecker/pkg/mailer/logmailer"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSender_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	err := logmailer.Sender{}.Send(ctx, mailer.Message{To: "a@example.com", Subject: "hello", Text: "body"})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "a@example.com", entries[0].ContextMap()["to"])
	require.Equal(t, "hello", entries[0].ContextMap()["subject"])
}
