// Package redisprogress implements the progress broker on Redis pub/sub so
// that API and worker processes can run on different hosts.
package redisprogress

import (
	"context"
	"encoding/json"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/progress"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultPrefix is prepended to the account id to form the channel name.
const DefaultPrefix = "labelchecker:scans:"

// Broker publishes and subscribes scan events on one channel per account.
type Broker struct {
	client redis.UniversalClient
	prefix string
}

var _ progress.Broker = (*Broker)(nil)

// New creates a Broker using client. An empty prefix uses DefaultPrefix.
func New(client redis.UniversalClient, prefix string) *Broker {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Broker{client: client, prefix: prefix}
}

func (b *Broker) channel(accountID domain.AccountID) string {
	return b.prefix + accountID.String()
}

// Publish sends event to the account channel of event.AccountID.
func (b *Broker) Publish(ctx context.Context, event domain.ScanEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel(event.AccountID), payload).Err(); err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}

// Subscribe listens on the account channel. The subscription is confirmed by
// Redis before Subscribe returns, so no event published afterwards is missed.
func (b *Broker) Subscribe(ctx context.Context, accountID domain.AccountID) (progress.Subscription, error) {
	ps := b.client.Subscribe(ctx, b.channel(accountID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()

		return nil, fmt.Errorf("could not subscribe: %w", err)
	}

	s := &subscription{
		ps:     ps,
		events: make(chan domain.ScanEvent, 16),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.forward(logger.WithFields(context.WithoutCancel(ctx), zap.Stringer("accountID", accountID)))

	return s, nil
}

type subscription struct {
	ps     *redis.PubSub
	events chan domain.ScanEvent
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func (s *subscription) Events() <-chan domain.ScanEvent { return s.events }

func (s *subscription) forward(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.events)

	msgs := s.ps.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event domain.ScanEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Warn(ctx, "dropping malformed scan event", zap.Error(err))

				continue
			}
			select {
			case s.events <- event:
			case <-s.done:
				return
			}
		}
	}
}

// Close stops the subscription and waits for the forwarding goroutine.
func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
		s.wg.Wait()
	})

	return err
}
