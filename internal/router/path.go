package router

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"swapcalldata/internal/entities"
)

const (
	addrSize = common.AddressLength
	feeSize  = 3
	hopSize  = addrSize + feeSize
)

// EncodeRouteToPath packs a route as addr|fee|addr|...|addr. Exact-output
// swaps consume the path from the output end, so exactOutput reverses it.
func EncodeRouteToPath(route *entities.Route, exactOutput bool) []byte {
	tokens := route.TokenPath
	pools := route.Pools
	out := make([]byte, 0, len(pools)*hopSize+addrSize)

	if !exactOutput {
		for i, pool := range pools {
			out = append(out, tokens[i].Address().Bytes()...)
			out = appendFee(out, pool.Fee)
		}
		return append(out, tokens[len(tokens)-1].Address().Bytes()...)
	}

	for i := len(pools) - 1; i >= 0; i-- {
		out = append(out, tokens[i+1].Address().Bytes()...)
		out = appendFee(out, pools[i].Fee)
	}
	return append(out, tokens[0].Address().Bytes()...)
}

func appendFee(out []byte, fee entities.FeeAmount) []byte {
	return append(out, byte(fee>>16), byte(fee>>8), byte(fee))
}

// DecodePath splits a packed path back into its tokens and fee tiers.
func DecodePath(path []byte) ([]common.Address, []entities.FeeAmount, error) {
	if len(path) < addrSize+hopSize || (len(path)-addrSize)%hopSize != 0 {
		return nil, nil, fmt.Errorf("%w: length %d", ErrInvalidPath, len(path))
	}
	hops := (len(path) - addrSize) / hopSize
	tokens := make([]common.Address, 0, hops+1)
	fees := make([]entities.FeeAmount, 0, hops)
	for i := 0; i < hops; i++ {
		off := i * hopSize
		tokens = append(tokens, common.BytesToAddress(path[off:off+addrSize]))
		f := path[off+addrSize : off+hopSize]
		fees = append(fees, entities.FeeAmount(uint32(f[0])<<16|uint32(f[1])<<8|uint32(f[2])))
	}
	tokens = append(tokens, common.BytesToAddress(path[hops*hopSize:]))
	return tokens, fees, nil
}
