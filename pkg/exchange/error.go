package exchange

import "errors"

var (
	errDuplicateOrder  = errors.New("duplicate order")
	errOrderIDNotFound = errors.New("orderID not found")
)
