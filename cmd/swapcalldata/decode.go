package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapcalldata/internal/config"
	"swapcalldata/internal/model"
	"swapcalldata/internal/router"
)

func runDecode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDecode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Calldata == "" && cfg.In == "" {
		return fmt.Errorf("calldata or input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}

	outWriter, err := newJSONLWriter(cfg.Out, false)
	if err != nil {
		return err
	}
	defer outWriter.Close()

	if cfg.Calldata != "" {
		decoded, err := decodeHex(cfg.Calldata)
		if err != nil {
			return err
		}
		return outWriter.Write(decoded)
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	logger.Info("decode start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
	)

	scanner := newLineScanner(inputFile)
	var lineNo, total, decoded, failed int
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var record model.CallRecord
		if err := json.Unmarshal(line, &record); err != nil {
			failed++
			logger.Warn("invalid call record", zap.Int("line", lineNo), zap.Error(err))
			continue
		}

		call, err := decodeHex(record.Calldata)
		if err != nil {
			failed++
			logger.Warn("decode failed",
				zap.Int("line", lineNo),
				zap.String("trade_id", record.TradeID),
				zap.Error(err),
			)
			continue
		}

		if err := outWriter.Write(call); err != nil {
			return err
		}
		decoded++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	logger.Info("decode complete",
		zap.Int("total", total),
		zap.Int("decoded", decoded),
		zap.Int("failed", failed),
	)

	return nil
}

func decodeHex(input string) (model.DecodedCall, error) {
	data, err := hexutil.Decode(strings.TrimSpace(input))
	if err != nil {
		return model.DecodedCall{}, fmt.Errorf("invalid calldata: %w", err)
	}
	return router.DecodeCalldata(data)
}
