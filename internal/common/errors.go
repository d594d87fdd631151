package common

import "errors"

// Error kinds the engine distinguishes, as sentinel errors suitable for
// errors.Is matching at the boundary.
var (
	// ErrInvalidOrderFormat covers a malformed input line: wrong
	// delimiter, unknown side character, non-integer field, wrong field
	// count.
	ErrInvalidOrderFormat = errors.New("invalid order format")

	// ErrOrderValidation covers a structurally well-formed order that
	// fails a construction invariant (peak_size > quantity, peak_size == 0).
	ErrOrderValidation = errors.New("order failed validation")

	// ErrInvalidOrderKind covers an order kind the LSE book does not
	// recognize (e.g. MARKET).
	ErrInvalidOrderKind = errors.New("invalid order kind")

	// ErrUnsupportedOperation covers cancel/modify requests, which this
	// engine never supports.
	ErrUnsupportedOperation = errors.New("operation not supported")

	// ErrTickTapeNotMonotonic covers a tick-tape index that regressed.
	ErrTickTapeNotMonotonic = errors.New("tick-tape index is not monotonic")
)
