package orderbook

import "fmt"

// Trade is produced once per crossing pair per scan step. Price is the
// resting order's limit price; the quantity transfer itself is the contract,
// the price is carried for downstream consumers (ledger, market data).
type Trade struct {
	Symbol      string
	BuyOrderID  string
	SellOrderID string
	Price       float64
	Qty         int64
}

// crossing reports whether a buy/sell pair is eligible to trade:
// buy price >= sell price. The orders must be on opposite sides.
func crossing(a, b *Order) (bool, error) {
	if a.Side == b.Side {
		return false, fmt.Errorf("%w: %s vs %s", ErrInvalidComparison, a, b)
	}

	buy, sell := a, b
	if buy.Side != BUY {
		buy, sell = b, a
	}
	return buy.Price >= sell.Price, nil
}

// executeTrade transfers min(buy remaining, sell remaining) between the
// pair. At least one side ends at zero.
func executeTrade(buy, sell *Order) (int64, error) {
	if buy.Side != BUY || sell.Side != SELL {
		return 0, fmt.Errorf("%w: execute %s vs %s", ErrInvalidComparison, buy, sell)
	}

	q := min(buy.qty, sell.qty)
	if err := buy.reduce(q); err != nil {
		return 0, err
	}
	if err := sell.reduce(q); err != nil {
		return 0, err
	}
	return q, nil
}
