// Package progress defines the push channel that carries scan progress events
// from workers to connected clients.
package progress

import (
	"context"
	"labelchecker/pkg/domain"
)

// Publisher emits scan events. Publishing is best effort: events for accounts
// without subscribers are dropped.
//
//go:generate mockgen -package mockprogress -source=interface.go -destination=mock/mockprogress.go *
type Publisher interface {
	Publish(ctx context.Context, event domain.ScanEvent) error
}

// Subscription delivers events for one account until closed.
type Subscription interface {
	// Events is closed when the subscription ends.
	Events() <-chan domain.ScanEvent
	Close() error
}

// Subscriber opens per-account subscriptions.
type Subscriber interface {
	Subscribe(ctx context.Context, accountID domain.AccountID) (Subscription, error)
}

// Broker is both ends of the channel.
type Broker interface {
	Publisher
	Subscriber
}
