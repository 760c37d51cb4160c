package router

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func validatePermit(p *PermitOptions) error {
	if p == nil {
		return nil
	}
	if p.Allowed {
		if p.Nonce == nil || p.Expiry == nil {
			return fmt.Errorf("%w: allowed permit needs nonce and expiry", ErrInvalidPermit)
		}
		return nil
	}
	if p.Amount == nil || p.Deadline == nil {
		return fmt.Errorf("%w: permit needs amount and deadline", ErrInvalidPermit)
	}
	return nil
}

func encodePermit(token common.Address, p *PermitOptions) ([]byte, error) {
	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}

	if p.Allowed {
		input, err := rabi.Pack(methodSelfPermitAllowed, token, p.Nonce.ToBig(), p.Expiry.ToBig(), p.V, [32]byte(p.R), [32]byte(p.S))
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", methodSelfPermitAllowed, err)
		}
		return input, nil
	}

	input, err := rabi.Pack(methodSelfPermit, token, p.Amount.ToBig(), p.Deadline.ToBig(), p.V, [32]byte(p.R), [32]byte(p.S))
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodSelfPermit, err)
	}
	return input, nil
}
