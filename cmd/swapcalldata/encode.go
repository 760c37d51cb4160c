package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapcalldata/internal/config"
	"swapcalldata/internal/ingest"
	"swapcalldata/internal/model"
	"swapcalldata/internal/router"
	"swapcalldata/internal/storage"
	"swapcalldata/internal/storage/postgres"
)

func runEncode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadEncode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}

	enc, err := newEncoder(cfg, time.Now())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks := storage.Fanout{storage.NewJsonlStorage(cfg.Out)}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, storage.Retrying{Sink: store, MaxRetries: cfg.MaxRetries, BaseDelay: cfg.RetryBackoff})
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	errWriter, err := newJSONLWriter(cfg.Errors, false)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	logger.Info("encode start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Stringer("slippage", cfg.Slippage),
		zap.Uint64("deadline", enc.deadline.Uint64()),
		zap.Bool("fee", !cfg.Fee.IsZero()),
		zap.Bool("postgres", cfg.PGDSN != ""),
		zap.Int("batch_size", cfg.BatchSize),
	)

	batch := make([]model.CallRecord, 0, cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := sinks.PutCallBatch(ctx, batch); err != nil {
			return fmt.Errorf("store calls: %w", err)
		}
		logger.Debug("batch stored", zap.Int("calls", len(batch)))
		batch = batch[:0]
		return nil
	}

	scanner := newLineScanner(inputFile)
	var lineNo, total, encoded, failed int
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var record model.TradeRecord
		if err := json.Unmarshal(line, &record); err != nil {
			failed++
			if err := writeEncodeError(errWriter, model.EncodeError{Line: lineNo, Error: err.Error()}); err != nil {
				return err
			}
			continue
		}

		call, err := enc.encode(record)
		if err != nil {
			failed++
			logger.Warn("encode failed",
				zap.Int("line", lineNo),
				zap.String("trade_id", record.ID),
				zap.Error(err),
			)
			if err := writeEncodeError(errWriter, model.EncodeError{Line: lineNo, TradeID: record.ID, Error: err.Error()}); err != nil {
				return err
			}
			continue
		}

		batch = append(batch, call)
		encoded++
		if len(batch) >= cfg.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}
	if err := errWriter.Close(); err != nil {
		return fmt.Errorf("close errors file: %w", err)
	}

	logger.Info("encode complete",
		zap.Int("total", total),
		zap.Int("encoded", encoded),
		zap.Int("failed", failed),
	)

	return nil
}

// encoder turns trade records into call records under one run's options.
type encoder struct {
	base      router.SwapOptions
	recipient common.Address
	deadline  *uint256.Int
	encodedAt string
}

func newEncoder(cfg config.EncodeConfig, now time.Time) (*encoder, error) {
	opts := router.SwapOptions{
		SlippageTolerance: cfg.Slippage,
		MulticallDeadline: cfg.MulticallDeadline,
	}

	var recipient common.Address
	if cfg.Recipient != "" {
		addr, err := ingest.ParseAddress(cfg.Recipient)
		if err != nil {
			return nil, fmt.Errorf("recipient: %w", err)
		}
		recipient = addr
	}

	if cfg.SqrtPriceLimit != "" {
		limit, err := ingest.ParseAmount(cfg.SqrtPriceLimit)
		if err != nil {
			return nil, fmt.Errorf("sqrt price limit: %w", err)
		}
		opts.SqrtPriceLimitX96 = limit
	}

	if !cfg.Fee.IsZero() {
		fee := &router.FeeOptions{Fee: cfg.Fee}
		if cfg.FeeRecipient != "" {
			addr, err := ingest.ParseAddress(cfg.FeeRecipient)
			if err != nil {
				return nil, fmt.Errorf("fee recipient: %w", err)
			}
			fee.Recipient = addr
		}
		opts.Fee = fee
	}

	deadline := uint256.NewInt(cfg.DeadlineAt(now))
	return &encoder{
		base:      opts,
		recipient: recipient,
		deadline:  deadline,
		encodedAt: now.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (e *encoder) encode(record model.TradeRecord) (model.CallRecord, error) {
	trade, err := ingest.BuildTrade(record)
	if err != nil {
		return model.CallRecord{}, err
	}

	recipient := e.recipient
	if record.Recipient != "" {
		addr, err := ingest.ParseAddress(record.Recipient)
		if err != nil {
			return model.CallRecord{}, fmt.Errorf("recipient: %w", err)
		}
		recipient = addr
	}

	opts := e.base
	opts.Recipient = recipient
	opts.Deadline = e.deadline

	params, err := router.SwapCallParameters(trade, opts)
	if err != nil {
		return model.CallRecord{}, err
	}

	return model.CallRecord{
		TradeID:   record.ID,
		ChainID:   record.ChainID,
		TradeType: trade.TradeType().String(),
		Selector:  hexutil.Encode(params.Calldata[:4]),
		Calldata:  params.CalldataHex(),
		Value:     params.Value,
		Recipient: recipient.Hex(),
		Deadline:  e.deadline.Uint64(),
		EncodedAt: e.encodedAt,
	}, nil
}

func writeEncodeError(writer *jsonlWriter, errRecord model.EncodeError) error {
	if writer == nil {
		return nil
	}
	if err := writer.Write(errRecord); err != nil {
		return fmt.Errorf("write encode error: %w", err)
	}
	return nil
}
