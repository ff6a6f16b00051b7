package redisprogress_test

import (
	"context"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/progress/redisprogress"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func receive(t *testing.T, ch <-chan domain.ScanEvent) domain.ScanEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")

		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	return domain.ScanEvent{}
}

func TestBroker_PublishSubscribe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	b := redisprogress.New(client, "")
	ctx := context.Background()

	accountA := domain.AccountID(uuid.New())
	accountB := domain.AccountID(uuid.New())

	subA, err := b.Subscribe(ctx, accountA)
	require.NoError(t, err)
	subB, err := b.Subscribe(ctx, accountB)
	require.NoError(t, err)

	scanID := domain.ScanID(uuid.New())
	score := 88
	require.NoError(t, b.Publish(ctx, domain.ScanEvent{
		ScanID:    scanID,
		AccountID: accountA,
		Status:    domain.ScanStatusCompleted,
		Progress:  domain.ProgressDone,
		Stage:     "done",
		Score:     &score,
		At:        time.Now().UTC(),
	}))

	ev := receive(t, subA.Events())
	require.Equal(t, scanID, ev.ScanID)
	require.Equal(t, domain.ScanStatusCompleted, ev.Status)
	require.Equal(t, 100, ev.Progress)
	require.NotNil(t, ev.Score)
	require.Equal(t, 88, *ev.Score)

	// B must not see A's events
	select {
	case ev := <-subB.Events():
		t.Fatalf("unexpected event for other account: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, subA.Close())
	require.NoError(t, subB.Close())
	// closing twice is fine
	require.NoError(t, subA.Close())

	_, ok := <-subA.Events()
	require.False(t, ok)
}

func TestBroker_PublishWithoutSubscribers(t *testing.T) {
	client := setupTestRedis(t)
	b := redisprogress.New(client, "test:")

	err := b.Publish(context.Background(), domain.ScanEvent{AccountID: domain.AccountID(uuid.New())})
	require.NoError(t, err)
}

func TestBroker_SubscribeFailsWhenRedisDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer func() { _ = client.Close() }()
	mr.Close()

	b := redisprogress.New(client, "")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err = b.Subscribe(ctx, domain.AccountID(uuid.New()))
	require.Error(t, err)
}
