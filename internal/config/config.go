package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"swapcalldata/internal/entities"
)

const envPrefix = "SWAPCALLDATA"

// EncodeConfig holds configuration for the encode command.
type EncodeConfig struct {
	In                string
	Out               string
	Errors            string
	Slippage          entities.Percent
	Recipient         string
	Deadline          uint64
	DeadlineIn        time.Duration
	SqrtPriceLimit    string
	Fee               entities.Percent
	FeeRecipient      string
	MulticallDeadline bool
	PGDSN             string
	BatchSize         int
	MaxRetries        int
	RetryBackoff      time.Duration
	LogLevel          string
}

// LoadEncode merges config file, environment variables, and flags into EncodeConfig.
func LoadEncode(cfgFile string, flags *pflag.FlagSet) (EncodeConfig, error) {
	v := viper.New()
	v.SetDefault("in", "./data/trades.jsonl")
	v.SetDefault("out", "./data/calls.jsonl")
	v.SetDefault("errors", "./data/encode_errors.jsonl")
	v.SetDefault("slippage", "0.005")
	v.SetDefault("deadline-in", 20*time.Minute)
	v.SetDefault("fee", "0")
	v.SetDefault("multicall-deadline", false)
	v.SetDefault("batch-size", 1000)
	v.SetDefault("max-retries", 5)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if err := read(v, cfgFile, flags); err != nil {
		return EncodeConfig{}, err
	}

	slippage, err := entities.ParsePercent(v.GetString("slippage"))
	if err != nil {
		return EncodeConfig{}, fmt.Errorf("slippage: %w", err)
	}
	fee, err := entities.ParsePercent(v.GetString("fee"))
	if err != nil {
		return EncodeConfig{}, fmt.Errorf("fee: %w", err)
	}
	deadline, err := ParseTimestamp(v.GetString("deadline"))
	if err != nil {
		return EncodeConfig{}, fmt.Errorf("deadline: %w", err)
	}

	cfg := EncodeConfig{
		In:                v.GetString("in"),
		Out:               v.GetString("out"),
		Errors:            v.GetString("errors"),
		Slippage:          slippage,
		Recipient:         v.GetString("recipient"),
		Deadline:          deadline,
		DeadlineIn:        v.GetDuration("deadline-in"),
		SqrtPriceLimit:    v.GetString("sqrt-price-limit"),
		Fee:               fee,
		FeeRecipient:      v.GetString("fee-recipient"),
		MulticallDeadline: v.GetBool("multicall-deadline"),
		PGDSN:             v.GetString("pg-dsn"),
		BatchSize:         v.GetInt("batch-size"),
		MaxRetries:        v.GetInt("max-retries"),
		RetryBackoff:      v.GetDuration("retry-backoff"),
		LogLevel:          v.GetString("log-level"),
	}
	if cfg.Deadline == 0 && cfg.DeadlineIn <= 0 {
		return EncodeConfig{}, fmt.Errorf("deadline-in must be positive when no deadline is set")
	}
	if cfg.BatchSize <= 0 {
		return EncodeConfig{}, fmt.Errorf("batch-size must be positive")
	}

	return cfg, nil
}

// DeadlineAt resolves the swap deadline for a run starting at now.
func (c EncodeConfig) DeadlineAt(now time.Time) uint64 {
	if c.Deadline != 0 {
		return c.Deadline
	}
	return uint64(now.Add(c.DeadlineIn).Unix())
}

func read(v *viper.Viper, cfgFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}
	return nil
}

// ParseTimestamp parses a timestamp value (unix seconds or RFC3339).
func ParseTimestamp(input string) (uint64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	if isNumeric(input) {
		val, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return 0, err
		}
		return val, nil
	}

	tm, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return 0, err
	}
	return uint64(tm.Unix()), nil
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}
