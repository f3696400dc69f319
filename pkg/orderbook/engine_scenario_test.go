package orderbook

import "testing"

func expectBook(t *testing.T, entries []BookEntry, want []BookEntry) {
	t.Helper()
	if len(entries) != len(want) {
		t.Fatalf("expected %d resting orders, got %+v", len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

// The end-to-end sequence from the original trading day: three resting buys,
// then two crossing sells, then a far-from-market sell.
func TestReferenceScenario(t *testing.T) {
	e := NewEngine("ABC")

	// 1. three buys against an empty sell book, all rest in arrival order
	e.Submit(NewOrder("B1", BUY, 80, 10)) // nolint
	e.Submit(NewOrder("B2", BUY, 100, 4)) // nolint
	e.Submit(NewOrder("B3", BUY, 95, 25)) // nolint

	snap := e.Snapshot()
	expectBook(t, snap.Buys, []BookEntry{
		{BUY, 80, 10},
		{BUY, 100, 4},
		{BUY, 95, 25},
	})
	if len(snap.Sells) != 0 {
		t.Fatalf("sell book must be empty, got %+v", snap.Sells)
	}

	// 2. SELL 5@90: skips 10@80, fills B2 completely (4), then 1 against B3
	trades, err := e.Submit(NewOrder("S1", SELL, 90, 5))
	if err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %+v", trades)
	}
	if trades[0].BuyOrderID != "B2" || trades[0].Qty != 4 {
		t.Errorf("first trade must fill B2 for 4, got %+v", trades[0])
	}
	if trades[1].BuyOrderID != "B3" || trades[1].Qty != 1 {
		t.Errorf("second trade must fill 1 against B3, got %+v", trades[1])
	}

	snap = e.Snapshot()
	expectBook(t, snap.Buys, []BookEntry{
		{BUY, 80, 10},
		{BUY, 95, 24},
	})
	if len(snap.Sells) != 0 {
		t.Fatalf("sell order was fully satisfied, got %+v", snap.Sells)
	}

	// 3. SELL 15@92: skips 10@80, fills 15 against B3
	trades, err = e.Submit(NewOrder("S2", SELL, 92, 15))
	if err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if len(trades) != 1 || trades[0].BuyOrderID != "B3" || trades[0].Qty != 15 {
		t.Fatalf("expected single trade of 15 against B3, got %+v", trades)
	}

	snap = e.Snapshot()
	expectBook(t, snap.Buys, []BookEntry{
		{BUY, 80, 10},
		{BUY, 95, 9},
	})

	// 4. a sell far above the market rests unchanged at the end of its book
	trades, err = e.Submit(NewOrder("S3", SELL, 1000, 5))
	if err != nil {
		t.Fatalf("submit err=%v", err)
	}
	if len(trades) != 0 {
		t.Fatalf("expected no trade, got %+v", trades)
	}

	snap = e.Snapshot()
	expectBook(t, snap.Buys, []BookEntry{
		{BUY, 80, 10},
		{BUY, 95, 9},
	})
	expectBook(t, snap.Sells, []BookEntry{
		{SELL, 1000, 5},
	})
}
