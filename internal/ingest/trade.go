// Package ingest builds validated trades from their JSON records.
package ingest

import (
	"fmt"

	"swapcalldata/internal/entities"
	"swapcalldata/internal/model"
)

// BuildTrade converts a TradeRecord into a validated trade.
func BuildTrade(record model.TradeRecord) (*entities.Trade, error) {
	tradeType, err := entities.ParseTradeType(record.TradeType)
	if err != nil {
		return nil, err
	}

	swaps := make([]entities.Swap, 0, len(record.Swaps))
	for i, s := range record.Swaps {
		swap, err := buildSwap(record.ChainID, s)
		if err != nil {
			return nil, fmt.Errorf("swap %d: %w", i, err)
		}
		swaps = append(swaps, swap)
	}

	return entities.NewTrade(tradeType, swaps...)
}

func buildSwap(chainID uint64, record model.SwapRecord) (entities.Swap, error) {
	input, err := BuildCurrency(chainID, record.Input)
	if err != nil {
		return entities.Swap{}, fmt.Errorf("input: %w", err)
	}
	output, err := BuildCurrency(chainID, record.Output)
	if err != nil {
		return entities.Swap{}, fmt.Errorf("output: %w", err)
	}

	pools := make([]*entities.Pool, 0, len(record.Pools))
	for i, p := range record.Pools {
		pool, err := BuildPool(chainID, p)
		if err != nil {
			return entities.Swap{}, fmt.Errorf("pool %d: %w", i, err)
		}
		pools = append(pools, pool)
	}

	route, err := entities.NewRoute(pools, input, output)
	if err != nil {
		return entities.Swap{}, err
	}

	inputAmount, err := ParseAmount(record.InputAmount)
	if err != nil {
		return entities.Swap{}, fmt.Errorf("input amount: %w", err)
	}
	outputAmount, err := ParseAmount(record.OutputAmount)
	if err != nil {
		return entities.Swap{}, fmt.Errorf("output amount: %w", err)
	}

	return entities.Swap{Route: route, InputAmount: inputAmount, OutputAmount: outputAmount}, nil
}

// BuildCurrency resolves a currency record. A native record without an
// address takes the chain's known wrapped token.
func BuildCurrency(chainID uint64, record model.CurrencyRecord) (entities.Currency, error) {
	if record.Native {
		if record.Address == "" {
			return entities.NativeOnChain(chainID)
		}
		wrapped, err := ParseAddress(record.Address)
		if err != nil {
			return entities.Currency{}, err
		}
		symbol := record.Symbol
		if symbol == "" {
			symbol = "ETH"
		}
		return entities.NewNative(wrapped, symbol), nil
	}

	address, err := ParseAddress(record.Address)
	if err != nil {
		return entities.Currency{}, err
	}
	return entities.NewToken(address, record.Decimals, record.Symbol), nil
}

// BuildPool converts a pool record; both sides must be tokens.
func BuildPool(chainID uint64, record model.PoolRecord) (*entities.Pool, error) {
	token0, err := BuildCurrency(chainID, record.Token0)
	if err != nil {
		return nil, fmt.Errorf("token0: %w", err)
	}
	token1, err := BuildCurrency(chainID, record.Token1)
	if err != nil {
		return nil, fmt.Errorf("token1: %w", err)
	}
	sqrtPrice, err := parseOptionalAmount(record.SqrtPriceX96)
	if err != nil {
		return nil, fmt.Errorf("sqrt price: %w", err)
	}
	liquidity, err := parseOptionalAmount(record.Liquidity)
	if err != nil {
		return nil, fmt.Errorf("liquidity: %w", err)
	}
	return entities.NewPool(token0.Wrapped(), token1.Wrapped(), entities.FeeAmount(record.Fee), sqrtPrice, liquidity, record.Tick)
}
