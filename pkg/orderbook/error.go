package orderbook

import "errors"

var (
	// ErrInvalidOrder rejects a submission with a non-positive price or
	// quantity before any book is touched.
	ErrInvalidOrder = errors.New("invalid order price or quantity")

	// ErrInvalidComparison and ErrInvalidFill signal a broken engine
	// invariant. A submission that hits one of them is aborted instead of
	// continuing with corrupted quantities.
	ErrInvalidComparison = errors.New("crossing test on same-side orders")
	ErrInvalidFill       = errors.New("fill exceeds remaining quantity")
)
