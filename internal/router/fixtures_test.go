package router

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"swapcalldata/internal/entities"
)

var (
	token0 = entities.NewToken(common.HexToAddress("0x0000000000000000000000000000000000000001"), 18, "t0")
	token1 = entities.NewToken(common.HexToAddress("0x0000000000000000000000000000000000000002"), 18, "t1")
	ether  = entities.NewNative(common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), "ETH")
	weth   = ether.Wrapped()

	recipient = common.HexToAddress("0x0000000000000000000000000000000000000003")
)

func newPool(t *testing.T, a, b entities.Currency) *entities.Pool {
	t.Helper()
	// sqrt(1) in Q64.96
	sqrtPrice := new(uint256.Int).Lsh(uint256.NewInt(1), 96)
	p, err := entities.NewPool(a, b, entities.FeeMedium, sqrtPrice, uint256.NewInt(1_000_000), 0)
	require.NoError(t, err)
	return p
}

func newRoute(t *testing.T, input, output entities.Currency, pools ...*entities.Pool) *entities.Route {
	t.Helper()
	r, err := entities.NewRoute(pools, input, output)
	require.NoError(t, err)
	return r
}

func newTrade(t *testing.T, route *entities.Route, in, out uint64, tradeType entities.TradeType) *entities.Trade {
	t.Helper()
	trade, err := entities.FromRoute(route, uint256.NewInt(in), uint256.NewInt(out), tradeType)
	require.NoError(t, err)
	return trade
}

func baseOptions() SwapOptions {
	return SwapOptions{
		SlippageTolerance: entities.NewPercent(1, 100),
		Recipient:         recipient,
		Deadline:          uint256.NewInt(123),
	}
}
