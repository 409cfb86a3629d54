package scheduler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vporfyris/wallet_rates_app/internal/platform/scheduler"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRateRefresher_InvokesRefreshOnStartAndTicks(t *testing.T) {
	var calls atomic.Int32
	refresher := scheduler.NewRateRefresher(20*time.Millisecond, func(ctx context.Context) (bool, error) {
		calls.Add(1)
		return false, nil
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	time.Sleep(90 * time.Millisecond)
	cancel()
	<-done

	// One immediate refresh plus several ticks.
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestRateRefresher_KeepsTickingAfterFailure(t *testing.T) {
	var calls atomic.Int32
	refresher := scheduler.NewRateRefresher(20*time.Millisecond, func(ctx context.Context) (bool, error) {
		calls.Add(1)
		return false, errors.New("feed down")
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	time.Sleep(70 * time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, calls.Load(), int32(2), "a failed cycle must not stop the loop")
}

func TestRateRefresher_StopsOnCancel(t *testing.T) {
	refresher := scheduler.NewRateRefresher(time.Hour, func(ctx context.Context) (bool, error) {
		return false, nil
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop on context cancellation")
	}
}
