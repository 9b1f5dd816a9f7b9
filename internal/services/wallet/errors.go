package wallet

import "errors"

// ErrUnauthorized covers both an unknown address and a wallet owned by
// another user, matching the transaction service's fold.
var ErrUnauthorized = errors.New("invalid API key or wallet address")
