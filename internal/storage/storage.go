package storage

import (
	"context"

	"swapcalldata/internal/model"
)

// Storage defines a sink for encoded router calls.
type Storage interface {
	PutCallBatch(ctx context.Context, calls []model.CallRecord) error
}

// Fanout writes each batch to every sink in order, stopping at the first error.
type Fanout []Storage

func (f Fanout) PutCallBatch(ctx context.Context, calls []model.CallRecord) error {
	for _, s := range f {
		if err := s.PutCallBatch(ctx, calls); err != nil {
			return err
		}
	}
	return nil
}
