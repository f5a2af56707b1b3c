package generator

import "errors"

var (
	// ErrInvalidParameter indicates n or p is outside its allowed domain.
	ErrInvalidParameter = errors.New("generator: invalid parameter")

	// ErrInvalidQuotas indicates role quotas are negative or sum to zero.
	ErrInvalidQuotas = errors.New("generator: invalid role quotas")
)
