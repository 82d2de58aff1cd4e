package khata

import "errors"

// Domain errors. Reference failures and validation failures never corrupt
// state; they surface as one of these sentinels, wrapped with context.
var (
	// ErrNotFound reports a mutation targeting a customer, entry or product
	// line that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports a mutation rejected at the store boundary,
	// such as an empty required field or a negative amount.
	ErrInvalidArgument = errors.New("invalid argument")
)
