package orderbook

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestSimpleMatch(t *testing.T) {
	e := NewEngine("TEST")
	calls := 0
	e.RegisterTradeCallback(func(trades []Trade) {
		calls++
		if len(trades) != 1 {
			t.Fatalf("expected 1 trade, got %d", len(trades))
		}
		tr := trades[0]
		if tr.BuyOrderID != "B1" || tr.SellOrderID != "S1" {
			t.Errorf("incorrect order IDs in trade: %+v", tr)
		}
		if tr.Qty != 10 || tr.Price != 100.0 {
			t.Errorf("incorrect qty/price: %+v", tr)
		}
	})

	// Rest a BUY first, then send a crossing SELL
	if _, err := e.Submit(NewOrder("B1", BUY, 100.0, 10)); err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if _, err := e.Submit(NewOrder("S1", SELL, 99.0, 10)); err != nil {
		t.Fatalf("submit err=%v", err)
	}

	if calls != 1 {
		t.Fatalf("expected 1 trade callback, got %d", calls)
	}
	snap := e.Snapshot()
	if len(snap.Buys) != 0 || len(snap.Sells) != 0 {
		t.Fatalf("both books should be empty, got %+v", snap)
	}
}

func TestNoMatchDueToPrice(t *testing.T) {
	e := NewEngine("TEST")
	e.RegisterTradeCallback(func(trades []Trade) {
		t.Fatalf("expected no trade, got %+v", trades)
	})

	e.Submit(NewOrder("S1", SELL, 100.0, 10)) // nolint
	e.Submit(NewOrder("B1", BUY, 98.0, 10))   // nolint

	snap := e.Snapshot()
	if len(snap.Buys) != 1 || len(snap.Sells) != 1 {
		t.Fatalf("both orders should rest, got %+v", snap)
	}
}

func TestPartialFillRestsRemainder(t *testing.T) {
	e := NewEngine("TEST")

	e.Submit(NewOrder("S1", SELL, 100.0, 5)) // nolint
	trades, err := e.Submit(NewOrder("B1", BUY, 101.0, 10))
	if err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if len(trades) != 1 || trades[0].Qty != 5 {
		t.Fatalf("expected one trade of qty 5, got %+v", trades)
	}

	snap := e.Snapshot()
	if len(snap.Buys) != 1 || snap.Buys[0].Qty != 5 || snap.Buys[0].Price != 101.0 {
		t.Fatalf("remainder 5@101 should rest on the buy book, got %+v", snap.Buys)
	}
}

func TestTimePriorityWithinMatches(t *testing.T) {
	e := NewEngine("TEST")

	// Two resting SELLs both cross; the earlier arrival must fill first.
	e.Submit(NewOrder("S1", SELL, 100.0, 5)) // nolint
	e.Submit(NewOrder("S2", SELL, 99.0, 5))  // nolint

	trades, err := e.Submit(NewOrder("B1", BUY, 100.0, 7))
	if err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %+v", trades)
	}
	if trades[0].SellOrderID != "S1" || trades[0].Qty != 5 {
		t.Errorf("first fill must consume S1 despite S2's better price, got %+v", trades[0])
	}
	if trades[1].SellOrderID != "S2" || trades[1].Qty != 2 {
		t.Errorf("second fill must consume S2, got %+v", trades[1])
	}
}

func TestExactMatchTouchesNothingElse(t *testing.T) {
	e := NewEngine("TEST")

	e.Submit(NewOrder("S1", SELL, 100.0, 5)) // nolint
	e.Submit(NewOrder("S2", SELL, 100.0, 5)) // nolint

	trades, err := e.Submit(NewOrder("B1", BUY, 100.0, 5))
	if err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if len(trades) != 1 || trades[0].SellOrderID != "S1" {
		t.Fatalf("expected exact fill against S1, got %+v", trades)
	}

	snap := e.Snapshot()
	if len(snap.Sells) != 1 || snap.Sells[0].Qty != 5 {
		t.Fatalf("S2 must rest untouched, got %+v", snap.Sells)
	}
}

func TestInvalidOrderRejected(t *testing.T) {
	e := NewEngine("TEST")
	e.Submit(NewOrder("B0", BUY, 80.0, 10)) // nolint
	before := e.Snapshot()

	cases := []*Order{
		NewOrder("B1", BUY, 50.0, 0),
		NewOrder("S1", SELL, 50.0, -3),
		NewOrder("B2", BUY, 0, 10),
		NewOrder("S2", SELL, -1.0, 10),
	}
	for _, order := range cases {
		if _, err := e.Submit(order); !errors.Is(err, ErrInvalidOrder) {
			t.Errorf("submit %s: expected ErrInvalidOrder, got %v", order, err)
		}
	}

	after := e.Snapshot()
	if len(after.Buys) != len(before.Buys) || len(after.Sells) != len(before.Sells) {
		t.Fatalf("rejected submissions must not mutate the books: %+v vs %+v", before, after)
	}
}

func TestBookCallbackAfterEverySubmission(t *testing.T) {
	e := NewEngine("TEST")
	var snaps []Snapshot
	e.RegisterBookCallback(func(s Snapshot) {
		snaps = append(snaps, s)
	})

	e.Submit(NewOrder("B1", BUY, 100.0, 10)) // nolint
	e.Submit(NewOrder("S1", SELL, 99.0, 4))  // nolint

	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if len(snaps[0].Buys) != 1 || snaps[0].Buys[0].Qty != 10 {
		t.Errorf("first snapshot should show resting 10@100, got %+v", snaps[0])
	}
	if len(snaps[1].Buys) != 1 || snaps[1].Buys[0].Qty != 6 {
		t.Errorf("second snapshot should show reduced 6@100, got %+v", snaps[1])
	}
}

func TestQuantityConservation(t *testing.T) {
	e := NewEngine("TEST")

	var submitted, traded int64
	e.RegisterTradeCallback(func(trades []Trade) {
		for _, tr := range trades {
			if tr.Qty <= 0 {
				t.Fatalf("non-positive trade qty: %+v", tr)
			}
			traded += tr.Qty
		}
	})

	seq := []struct {
		side  Side
		price float64
		qty   int64
	}{
		{BUY, 80, 10}, {BUY, 100, 4}, {BUY, 95, 25},
		{SELL, 90, 5}, {SELL, 92, 15}, {SELL, 1000, 5},
		{BUY, 1000, 2}, {SELL, 70, 100},
	}
	for i, s := range seq {
		if _, err := e.Submit(NewOrder(fmt.Sprintf("O-%d", i), s.side, s.price, s.qty)); err != nil {
			t.Fatalf("submit %d err=%v", i, err)
		}
		submitted += s.qty

		// every unit is either resting or was transferred exactly once on
		// each side of a trade
		if rest := e.RestingQty(); rest != submitted-2*traded {
			t.Fatalf("after submit %d: resting=%d submitted=%d traded=%d", i, rest, submitted, traded)
		}

		snap := e.Snapshot()
		for _, entry := range append(snap.Buys, snap.Sells...) {
			if entry.Qty <= 0 {
				t.Fatalf("resting order with non-positive qty: %+v", entry)
			}
		}
	}
}

func TestHighVolumeOrders(t *testing.T) {
	e := NewEngine("TEST")
	trade := 0
	e.RegisterTradeCallback(func(trades []Trade) {
		trade++
	})

	num := 10_000
	for i := 0; i < num; i++ {
		side := BUY
		if i%2 == 0 {
			side = SELL
		}
		if _, err := e.Submit(NewOrder(fmt.Sprintf("ORD-%d", i), side, 100.0, 10)); err != nil {
			t.Fatalf("submit err=%v", err)
		}
	}

	if trade != num/2 {
		t.Errorf("expected %d matching submissions, got %d", num/2, trade)
	}
}

func TestConcurrentSubmissions(t *testing.T) {
	e := NewEngine("TEST")

	var wg sync.WaitGroup
	submit := func(id int, side Side) {
		defer wg.Done()
		e.Submit(NewOrder(fmt.Sprintf("C-%d-%s", id, side), side, 100.0, 10)) // nolint
	}

	n := 1000
	for i := 0; i < n; i++ {
		wg.Add(2)
		go submit(i, BUY)
		go submit(i, SELL)
	}
	wg.Wait()

	// equal buy and sell volume at one price must leave both books empty
	if rest := e.RestingQty(); rest != 0 {
		t.Fatalf("expected fully crossed books, resting qty=%d", rest)
	}
}

func BenchmarkEngineSubmit(b *testing.B) {
	e := NewEngine("TEST")

	for i := 0; i < 10_000; i++ {
		e.Submit(NewOrder(fmt.Sprintf("SELL-%d", i), SELL, 100.0+float64(i%5), 10)) // nolint
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e.Submit(NewOrder(fmt.Sprintf("BUY-%d", i), BUY, 101.0, 10)) // nolint
	}
}
