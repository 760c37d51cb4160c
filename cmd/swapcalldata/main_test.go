package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapcalldata/internal/config"
	"swapcalldata/internal/entities"
	"swapcalldata/internal/model"
)

const (
	tokenA    = "0x0000000000000000000000000000000000000001"
	tokenB    = "0x0000000000000000000000000000000000000002"
	recipient = "0x0000000000000000000000000000000000000003"
)

const singleHopTrade = `{"id":"t1","chain_id":1,"trade_type":"EXACT_INPUT","swaps":[{"input":{"address":"` + tokenA + `","decimals":18},"output":{"address":"` + tokenB + `","decimals":18},"pools":[{"token0":{"address":"` + tokenA + `","decimals":18},"token1":{"address":"` + tokenB + `","decimals":18},"fee":3000}],"input_amount":"100","output_amount":"98"}]}`

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestEncoderEncode(t *testing.T) {
	cfg := config.EncodeConfig{
		Slippage:  entities.NewPercent(1, 100),
		Recipient: recipient,
		Deadline:  123,
	}
	enc, err := newEncoder(cfg, time.Unix(0, 0))
	require.NoError(t, err)

	var record model.TradeRecord
	require.NoError(t, json.Unmarshal([]byte(singleHopTrade), &record))

	call, err := enc.encode(record)
	require.NoError(t, err)
	assert.Equal(t, "t1", call.TradeID)
	assert.Equal(t, "0x414bf389", call.Selector)
	assert.Equal(t, "0x00", call.Value)
	assert.Equal(t, uint64(123), call.Deadline)
	assert.True(t, strings.HasPrefix(call.Calldata, call.Selector))

	decoded, err := decodeHex(call.Calldata)
	require.NoError(t, err)
	assert.Equal(t, "97", decoded.Args["amountOutMinimum"])
}

func TestEncoderRequiresRecipient(t *testing.T) {
	enc, err := newEncoder(config.EncodeConfig{Slippage: entities.NewPercent(1, 100), Deadline: 1}, time.Now())
	require.NoError(t, err)

	var record model.TradeRecord
	require.NoError(t, json.Unmarshal([]byte(singleHopTrade), &record))
	_, err = enc.encode(record)
	assert.Error(t, err)

	record.Recipient = recipient
	_, err = enc.encode(record)
	assert.NoError(t, err)
}

func TestNewEncoderRejectsBadOptions(t *testing.T) {
	_, err := newEncoder(config.EncodeConfig{Recipient: "nope"}, time.Now())
	assert.Error(t, err)
	_, err = newEncoder(config.EncodeConfig{SqrtPriceLimit: "x"}, time.Now())
	assert.Error(t, err)
	_, err = newEncoder(config.EncodeConfig{Fee: entities.NewPercent(1, 100), FeeRecipient: "0x1"}, time.Now())
	assert.Error(t, err)
}

func TestEncodeDecodeCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "trades.jsonl")
	out := filepath.Join(dir, "calls.jsonl")
	errs := filepath.Join(dir, "errors.jsonl")
	decoded := filepath.Join(dir, "decoded.jsonl")

	require.NoError(t, os.WriteFile(in, []byte(singleHopTrade+"\n\nnot json\n"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"encode", "--in", in, "--out", out, "--errors", errs, "--recipient", recipient, "--deadline", "123", "--log-level", "error"})
	require.NoError(t, root.Execute())

	calls := readLines(t, out)
	require.Len(t, calls, 1)
	var call model.CallRecord
	require.NoError(t, json.Unmarshal([]byte(calls[0]), &call))
	assert.Equal(t, "0x414bf389", call.Selector)

	failures := readLines(t, errs)
	require.Len(t, failures, 1)
	var failure model.EncodeError
	require.NoError(t, json.Unmarshal([]byte(failures[0]), &failure))
	assert.Equal(t, 3, failure.Line)

	root = newRootCmd()
	root.SetArgs([]string{"decode", "--in", out, "--out", decoded, "--log-level", "error"})
	require.NoError(t, root.Execute())

	lines := readLines(t, decoded)
	require.Len(t, lines, 1)
	var got model.DecodedCall
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.True(t, strings.HasPrefix(got.Method, "exactInputSingle("))
	assert.Equal(t, strings.ToLower(recipient), strings.ToLower(got.Args["recipient"]))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteEncodeErrorReportsFailure(t *testing.T) {
	// a 16-byte buffer sends each record straight to the broken writer
	w := &jsonlWriter{writer: bufio.NewWriterSize(brokenWriter{}, 16)}
	err := writeEncodeError(w, model.EncodeError{Line: 7, TradeID: "t7", Error: "bad route"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.NoError(t, writeEncodeError(nil, model.EncodeError{Line: 1}))
}

func TestJSONLWriterCloseTwice(t *testing.T) {
	w, err := newJSONLWriter(filepath.Join(t.TempDir(), "errors.jsonl"), false)
	require.NoError(t, err)
	require.NoError(t, w.Write(model.EncodeError{Line: 1, Error: "x"}))
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
