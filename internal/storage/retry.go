package storage

import (
	"context"
	"time"

	"swapcalldata/internal/model"
)

// Retrying retries failed batches with exponential backoff.
type Retrying struct {
	Sink       Storage
	MaxRetries int
	BaseDelay  time.Duration
}

func (r Retrying) PutCallBatch(ctx context.Context, calls []model.CallRecord) error {
	return withRetry(ctx, r.MaxRetries, r.BaseDelay, func(ctx context.Context) error {
		return r.Sink.PutCallBatch(ctx, calls)
	})
}

func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	delay := baseDelay
	for attempt := 0; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= maxRetries {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
	}
}
