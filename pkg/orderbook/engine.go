package orderbook

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Snapshot is a read-only view of both books in current resting (arrival)
// order, taken after a submission completed.
type Snapshot struct {
	Symbol string      `json:"symbol"`
	Buys   []BookEntry `json:"buys"`
	Sells  []BookEntry `json:"sells"`
}

// Engine matches orders for a single instrument. It owns one buy-side and
// one sell-side book; an incoming order is matched against the opposite
// book and whatever remains is rested on its own side. Every submission
// runs as one atomic unit under the engine mutex, separate instruments use
// separate engines and never share state.
type Engine struct {
	symbol string

	buyBook  *OrderBook
	sellBook *OrderBook

	tradeCallbacks []func([]Trade)
	bookCallbacks  []func(Snapshot)

	mu sync.Mutex
}

func NewEngine(symbol string) *Engine {
	return &Engine{
		symbol:   symbol,
		buyBook:  newOrderBook(BUY),
		sellBook: newOrderBook(SELL),
	}
}

func (e *Engine) Symbol() string {
	return e.symbol
}

// SubmitBuy submits a buy order with a generated ID.
func (e *Engine) SubmitBuy(price float64, qty int64) ([]Trade, error) {
	return e.Submit(NewOrder(uuid.New().String(), BUY, price, qty))
}

// SubmitSell submits a sell order with a generated ID.
func (e *Engine) SubmitSell(price float64, qty int64) ([]Trade, error) {
	return e.Submit(NewOrder(uuid.New().String(), SELL, price, qty))
}

// Submit matches the order against the opposite book and rests the
// remainder. A non-positive price or quantity is rejected with
// ErrInvalidOrder before any book is touched.
func (e *Engine) Submit(order *Order) ([]Trade, error) {
	if order == nil || order.Price <= 0 || order.qty <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrder, order)
	}
	if order.Side != BUY && order.Side != SELL {
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidOrder, order.Side)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	counterBook, sideBook := e.sellBook, e.buyBook
	if order.Side == SELL {
		counterBook, sideBook = e.buyBook, e.sellBook
	}

	trades, filled, err := counterBook.matchAndConsume(order)
	if err != nil {
		return nil, err
	}
	if !filled && order.qty > 0 {
		if err := sideBook.add(order); err != nil {
			return nil, err
		}
	}

	for i := range trades {
		trades[i].Symbol = e.symbol
	}

	if len(trades) > 0 {
		for _, cb := range e.tradeCallbacks {
			cb(trades)
		}
	}
	if len(e.bookCallbacks) > 0 {
		snap := e.snapshotLocked()
		for _, cb := range e.bookCallbacks {
			cb(snap)
		}
	}

	return trades, nil
}

// RegisterTradeCallback subscribes to the trades produced by each
// submission, one call per submission that traded.
func (e *Engine) RegisterTradeCallback(fn func([]Trade)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tradeCallbacks = append(e.tradeCallbacks, fn)
}

// RegisterBookCallback subscribes to a book snapshot after every accepted
// submission.
func (e *Engine) RegisterBookCallback(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bookCallbacks = append(e.bookCallbacks, fn)
}

// Snapshot returns both books in arrival order.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Symbol: e.symbol,
		Buys:   e.buyBook.entries(),
		Sells:  e.sellBook.entries(),
	}
}

// RestingQty is the total remaining quantity across both books.
func (e *Engine) RestingQty() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total int64
	for o := e.buyBook.head; o != nil; o = o.next {
		total += o.qty
	}
	for o := e.sellBook.head; o != nil; o = o.next {
		total += o.qty
	}
	return total
}
