package transaction

import "errors"

// Service errors. A missing wallet and a wallet owned by someone else
// produce the same unauthorized signal so callers cannot probe for wallet
// existence.
var (
	ErrUnauthorized      = errors.New("invalid API key or wallet address")
	ErrInvalidAmount     = errors.New("transfer amount must be non-negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
