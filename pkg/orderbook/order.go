package orderbook

import "fmt"

type Side string

const (
	BUY  Side = "BUY"
	SELL Side = "SELL"
)

// Order is a single limit order. Side and Price never change after
// construction; the remaining quantity only moves down, one fill at a time.
// Two orders may share price and quantity, the ID carries identity.
type Order struct {
	ID    string
	Side  Side
	Price float64

	qty  int64
	next *Order
	prev *Order
}

func NewOrder(id string, side Side, price float64, qty int64) *Order {
	return &Order{
		ID:    id,
		Side:  side,
		Price: price,
		qty:   qty,
	}
}

// Qty returns the remaining unfilled quantity.
func (o *Order) Qty() int64 {
	return o.qty
}

// Filled reports whether the order has no remaining quantity.
func (o *Order) Filled() bool {
	return o.qty == 0
}

func (o *Order) reduce(amount int64) error {
	if amount > o.qty {
		return fmt.Errorf("%w: reduce %d but remaining %d", ErrInvalidFill, amount, o.qty)
	}
	o.qty -= amount
	return nil
}

func (o *Order) String() string {
	return fmt.Sprintf("[%s %d@%g]", o.Side, o.qty, o.Price)
}
