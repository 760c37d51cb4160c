package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "swapcalldata",
		Short:        "Uniswap V3 SwapRouter calldata encoder",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode quoted trades into router calldata",
		RunE:  runEncode,
	}

	encodeCmd.Flags().String("in", "./data/trades.jsonl", "input trades JSONL")
	encodeCmd.Flags().String("out", "./data/calls.jsonl", "output calls JSONL")
	encodeCmd.Flags().String("errors", "./data/encode_errors.jsonl", "encode errors JSONL")
	encodeCmd.Flags().String("slippage", "0.005", "slippage tolerance (0.005 or 0.5%)")
	encodeCmd.Flags().String("recipient", "", "default output recipient, overridden per trade")
	encodeCmd.Flags().String("deadline", "", "absolute deadline (unix seconds or RFC3339)")
	encodeCmd.Flags().Duration("deadline-in", 20*time.Minute, "deadline relative to now when --deadline is unset")
	encodeCmd.Flags().String("sqrt-price-limit", "", "sqrtPriceX96 limit for single-hop swaps")
	encodeCmd.Flags().String("fee", "0", "output fee (0.0025 or 0.25%)")
	encodeCmd.Flags().String("fee-recipient", "", "output fee recipient")
	encodeCmd.Flags().Bool("multicall-deadline", false, "batch through multicall(uint256,bytes[])")
	encodeCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for archiving calls")
	encodeCmd.Flags().Int("batch-size", 1000, "calls per storage batch")
	encodeCmd.Flags().Int("max-retries", 5, "maximum Postgres write retries")
	encodeCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial Postgres retry backoff")
	encodeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode router calldata",
		RunE:  runDecode,
	}

	decodeCmd.Flags().String("calldata", "", "hex calldata to decode")
	decodeCmd.Flags().String("in", "", "input calls JSONL (used when --calldata is empty)")
	decodeCmd.Flags().String("out", "-", "output JSONL, - for stdout")
	decodeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(decodeCmd)

	return root
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
