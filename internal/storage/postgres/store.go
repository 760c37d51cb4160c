package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"swapcalldata/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS swap_calls (
	chain_id    BIGINT      NOT NULL,
	trade_id    TEXT        NOT NULL,
	trade_type  TEXT        NOT NULL,
	selector    TEXT        NOT NULL,
	calldata    TEXT        NOT NULL,
	value       TEXT        NOT NULL,
	recipient   TEXT        NOT NULL,
	deadline    BIGINT      NOT NULL,
	encoded_at  TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (chain_id, trade_id)
)`

// Store archives encoded calls in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the swap_calls table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// PutCallBatch inserts or replaces calls keyed by (chain_id, trade_id).
func (s *Store) PutCallBatch(ctx context.Context, calls []model.CallRecord) error {
	if len(calls) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range calls {
		encodedAt, err := time.Parse(time.RFC3339Nano, c.EncodedAt)
		if err != nil {
			return fmt.Errorf("trade %s: encoded_at: %w", c.TradeID, err)
		}
		batch.Queue(`
			INSERT INTO swap_calls (
				chain_id, trade_id, trade_type, selector, calldata, value, recipient, deadline, encoded_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
			ON CONFLICT (chain_id, trade_id)
			DO UPDATE SET
				trade_type = EXCLUDED.trade_type,
				selector = EXCLUDED.selector,
				calldata = EXCLUDED.calldata,
				value = EXCLUDED.value,
				recipient = EXCLUDED.recipient,
				deadline = EXCLUDED.deadline,
				encoded_at = EXCLUDED.encoded_at,
				updated_at = now()
		`,
			int64(c.ChainID),
			c.TradeID,
			c.TradeType,
			c.Selector,
			c.Calldata,
			c.Value,
			c.Recipient,
			int64(c.Deadline),
			encodedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range calls {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// CountCalls returns the number of archived calls for a chain.
func (s *Store) CountCalls(ctx context.Context, chainID uint64) (int64, error) {
	var n int64
	row := s.pool.QueryRow(ctx, `SELECT count(*) FROM swap_calls WHERE chain_id=$1`, int64(chainID))
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
