package entities

import "fmt"

// Route is an ordered chain of pools from Input to Output.
type Route struct {
	Pools  []*Pool
	Input  Currency
	Output Currency
	// TokenPath lists the wrapped token entered at each hop plus the final
	// token, so len(TokenPath) == len(Pools)+1.
	TokenPath []Currency
}

// NewRoute validates that consecutive pools share a token and that the chain
// starts at input and ends at output, with native ends matched by their
// wrapped token.
func NewRoute(pools []*Pool, input, output Currency) (*Route, error) {
	if len(pools) == 0 {
		return nil, fmt.Errorf("%w: no pools", ErrInvalidRoute)
	}

	current := input.Wrapped()
	path := make([]Currency, 0, len(pools)+1)
	path = append(path, current)
	for i, pool := range pools {
		if pool == nil {
			return nil, fmt.Errorf("%w: pool %d is nil", ErrInvalidRoute, i)
		}
		if !pool.Involves(current) {
			if i == 0 {
				return nil, fmt.Errorf("%w: input %s not in first pool", ErrInvalidRoute, input)
			}
			return nil, fmt.Errorf("%w: pool %d does not contain %s", ErrInvalidRoute, i, current)
		}
		current = pool.Other(current)
		path = append(path, current)
	}
	if !current.Equal(output.Wrapped()) {
		return nil, fmt.Errorf("%w: route ends at %s, want %s", ErrInvalidRoute, current, output)
	}

	return &Route{
		Pools:     append([]*Pool(nil), pools...),
		Input:     input,
		Output:    output,
		TokenPath: path,
	}, nil
}

// Hops is the number of pools traversed.
func (r *Route) Hops() int { return len(r.Pools) }
