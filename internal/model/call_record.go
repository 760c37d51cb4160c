package model

// CallRecord is the encoded router call for one trade.
type CallRecord struct {
	TradeID   string `json:"trade_id"`
	ChainID   uint64 `json:"chain_id"`
	TradeType string `json:"trade_type"`
	Selector  string `json:"selector"`
	Calldata  string `json:"calldata"`
	Value     string `json:"value"`
	Recipient string `json:"recipient"`
	Deadline  uint64 `json:"deadline"`
	EncodedAt string `json:"encoded_at"`
}

// DecodedCall is a router call broken into its method and arguments.
// Multicall payloads list their inner calls in Calls.
type DecodedCall struct {
	Selector string            `json:"selector"`
	Method   string            `json:"method"`
	Args     map[string]string `json:"args,omitempty"`
	Calls    []DecodedCall     `json:"calls,omitempty"`
}

// EncodeError records a trade that could not be encoded.
type EncodeError struct {
	Line    int    `json:"line"`
	TradeID string `json:"trade_id,omitempty"`
	Error   string `json:"error"`
}
