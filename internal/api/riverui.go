package api

import (
	"context"
	"fmt"
	"labelchecker/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"riverqueue.com/riverui"
)

// newRiverUI builds and starts the River dashboard. Its background services
// stop with ctx.
func newRiverUI(ctx context.Context, client *river.Client[pgx.Tx], prefix string) (*riverui.Handler, error) {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create riverui handler: %w", err)
	}

	if err := handler.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start riverui handler: %w", err)
	}

	return handler, nil
}
