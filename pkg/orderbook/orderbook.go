package orderbook

import "fmt"

// OrderBook holds the resting orders of one side in strict arrival order.
// Storage is a doubly linked chain of orders so a filled order unlinks in
// O(1) from wherever the scan finds it. Arrival order is the only priority
// rule; there is no price level structure.
type OrderBook struct {
	side Side
	head *Order
	tail *Order
	size int
}

func newOrderBook(side Side) *OrderBook {
	return &OrderBook{side: side}
}

// add appends an order to the end of the arrival sequence.
func (b *OrderBook) add(order *Order) error {
	if order.Side != b.side {
		return fmt.Errorf("%w: %s order into %s book", ErrInvalidComparison, order.Side, b.side)
	}
	if order.qty <= 0 {
		return fmt.Errorf("%w: resting %s", ErrInvalidOrder, order)
	}

	if b.tail == nil {
		b.head = order
		b.tail = order
	} else {
		order.prev = b.tail
		b.tail.next = order
		b.tail = order
	}
	b.size++
	return nil
}

func (b *OrderBook) remove(order *Order) {
	if order.prev == nil {
		b.head = order.next
	} else {
		order.prev.next = order.next
	}
	if order.next == nil {
		b.tail = order.prev
	} else {
		order.next.prev = order.prev
	}
	order.prev = nil
	order.next = nil
	b.size--
}

// matchAndConsume satisfies as much of the incoming order as possible
// against this book. The scan visits resting orders oldest first and does
// not stop at a non-crossing order; later arrivals at better prices are
// still checked. Fully filled resting orders are unlinked as the scan goes.
// Returns the trades produced and whether the incoming order was fully
// satisfied.
func (b *OrderBook) matchAndConsume(incoming *Order) ([]Trade, bool, error) {
	var trades []Trade

	for resting := b.head; resting != nil; {
		next := resting.next

		ok, err := crossing(incoming, resting)
		if err != nil {
			return trades, false, err
		}
		if !ok {
			resting = next
			continue
		}

		buy, sell := incoming, resting
		if incoming.Side != BUY {
			buy, sell = resting, incoming
		}
		q, err := executeTrade(buy, sell)
		if err != nil {
			return trades, false, err
		}
		trades = append(trades, Trade{
			BuyOrderID:  buy.ID,
			SellOrderID: sell.ID,
			Price:       resting.Price,
			Qty:         q,
		})

		if resting.Filled() {
			b.remove(resting)
		}
		if incoming.Filled() {
			return trades, true, nil
		}

		resting = next
	}

	return trades, false, nil
}

// BookEntry is one resting order as exposed to observers.
type BookEntry struct {
	Side  Side    `json:"side"`
	Price float64 `json:"price"`
	Qty   int64   `json:"qty"`
}

// entries returns the resting orders in arrival order.
func (b *OrderBook) entries() []BookEntry {
	out := make([]BookEntry, 0, b.size)
	for o := b.head; o != nil; o = o.next {
		out = append(out, BookEntry{Side: o.Side, Price: o.Price, Qty: o.qty})
	}
	return out
}

func (b *OrderBook) len() int {
	return b.size
}
