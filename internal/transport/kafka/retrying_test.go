package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"shiphub/internal/domain"
	"shiphub/internal/metrics"
	testlog "shiphub/internal/testutil"
)

type fakePublisher struct {
	fn func(context.Context, domain.RequestEvent) error
}

func (f *fakePublisher) Publish(ctx context.Context, ev domain.RequestEvent) error {
	return f.fn(ctx, ev)
}

func noWait(ctx context.Context, _ time.Duration) bool { return ctx.Err() == nil }

func TestRetryingPublisher_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	var calls int32
	next := &fakePublisher{fn: func(context.Context, domain.RequestEvent) error {
		if atomic.AddInt32(&calls, 1) < 3 {
			return errors.New("leader not available")
		}
		return nil
	}}
	retries := metrics.NewEventPublishRetriesTotal()

	p := NewRetryingPublisher(next, rec.Logger(), retries, RetryConfig{MaxAttempts: 5})
	require.NotNil(t, p)
	p.wait = noWait

	require.NoError(t, p.Publish(context.Background(), domain.RequestEvent{RequestID: "r1"}))
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	require.Equal(t, 2.0, testutil.ToFloat64(retries))
	require.True(t, rec.HasMsg("request event publish retry"))
}

func TestRetryingPublisher_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls int32
	boom := errors.New("broker down")
	next := &fakePublisher{fn: func(context.Context, domain.RequestEvent) error {
		atomic.AddInt32(&calls, 1)
		return boom
	}}

	p := NewRetryingPublisher(next, nil, nil, RetryConfig{MaxAttempts: 3})
	p.wait = noWait

	require.ErrorIs(t, p.Publish(context.Background(), domain.RequestEvent{}), boom)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryingPublisher_NoRetryOnPermanent(t *testing.T) {
	t.Parallel()

	var calls int32
	next := &fakePublisher{fn: func(context.Context, domain.RequestEvent) error {
		atomic.AddInt32(&calls, 1)
		return Permanent(errors.New("cannot encode"))
	}}

	p := NewRetryingPublisher(next, nil, nil, RetryConfig{MaxAttempts: 5})
	p.wait = noWait

	err := p.Publish(context.Background(), domain.RequestEvent{})
	require.Error(t, err)
	require.True(t, IsPermanent(err))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetryingPublisher_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	next := &fakePublisher{fn: func(context.Context, domain.RequestEvent) error {
		atomic.AddInt32(&calls, 1)
		cancel()
		return errors.New("timeout")
	}}

	p := NewRetryingPublisher(next, nil, nil, RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour, MaxDelay: time.Hour})
	require.Error(t, p.Publish(ctx, domain.RequestEvent{}))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetryingPublisher_NilNext(t *testing.T) {
	t.Parallel()

	p := NewRetryingPublisher(nil, nil, nil, RetryConfig{})
	require.Nil(t, p)
	require.NoError(t, p.Publish(context.Background(), domain.RequestEvent{}))
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	base, max := 100*time.Millisecond, time.Second
	require.Equal(t, 100*time.Millisecond, backoff(base, max, 1))
	require.Equal(t, 200*time.Millisecond, backoff(base, max, 2))
	require.Equal(t, 800*time.Millisecond, backoff(base, max, 4))
	require.Equal(t, time.Second, backoff(base, max, 5))
	require.Equal(t, time.Second, backoff(base, max, 80))
}

func TestSleepWithContext(t *testing.T) {
	t.Parallel()

	require.True(t, sleepWithContext(context.Background(), 0))
	require.True(t, sleepWithContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, sleepWithContext(ctx, time.Hour))
}
