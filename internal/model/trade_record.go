package model

// TradeRecord is one quoted trade as read from the encode input JSONL.
type TradeRecord struct {
	ID        string       `json:"id"`
	ChainID   uint64       `json:"chain_id"`
	TradeType string       `json:"trade_type"`
	Recipient string       `json:"recipient,omitempty"`
	Swaps     []SwapRecord `json:"swaps"`
}

// SwapRecord is one route leg of a trade with its quoted amounts.
type SwapRecord struct {
	Input        CurrencyRecord `json:"input"`
	Output       CurrencyRecord `json:"output"`
	Pools        []PoolRecord   `json:"pools"`
	InputAmount  string         `json:"input_amount"`
	OutputAmount string         `json:"output_amount"`
}

// CurrencyRecord describes a token, or the native asset when Native is set.
// For the native asset Address optionally names the wrapped token; when
// empty the chain's known wrapped token is used.
type CurrencyRecord struct {
	Native   bool   `json:"native,omitempty"`
	Address  string `json:"address,omitempty"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol,omitempty"`
}

// PoolRecord is a pool snapshot.
type PoolRecord struct {
	Token0       CurrencyRecord `json:"token0"`
	Token1       CurrencyRecord `json:"token1"`
	Fee          uint32         `json:"fee"`
	SqrtPriceX96 string         `json:"sqrt_price_x96,omitempty"`
	Liquidity    string         `json:"liquidity,omitempty"`
	Tick         int32          `json:"tick"`
}
