package orderbook

import (
	"fmt"
	"sync"
	"testing"
)

func TestManagerIsolatesSymbols(t *testing.T) {
	m := NewEngineManager()

	m.SubmitBuy("AAA", 100, 10) // nolint
	m.SubmitSell("BBB", 90, 10) // nolint

	snapA := m.Snapshot("AAA")
	snapB := m.Snapshot("BBB")
	if len(snapA.Buys) != 1 || len(snapA.Sells) != 0 {
		t.Fatalf("AAA book wrong: %+v", snapA)
	}
	if len(snapB.Sells) != 1 || len(snapB.Buys) != 0 {
		t.Fatalf("BBB book wrong: %+v", snapB)
	}
}

func TestManagerCallbackAppliesToFutureEngines(t *testing.T) {
	m := NewEngineManager()

	var mu sync.Mutex
	seen := map[string]int64{}
	m.RegisterTradeCallback(func(trades []Trade) {
		mu.Lock()
		defer mu.Unlock()
		for _, tr := range trades {
			seen[tr.Symbol] += tr.Qty
		}
	})

	m.SubmitSell("AAA", 100, 5) // nolint
	m.SubmitBuy("AAA", 100, 5)  // nolint
	m.SubmitSell("BBB", 50, 3)  // nolint
	m.SubmitBuy("BBB", 60, 3)   // nolint

	if seen["AAA"] != 5 || seen["BBB"] != 3 {
		t.Fatalf("expected trades on both symbols, got %+v", seen)
	}
}

func TestManagerParallelSymbols(t *testing.T) {
	m := NewEngineManager()

	var wg sync.WaitGroup
	for s := 0; s < 8; s++ {
		symbol := fmt.Sprintf("SYM-%d", s)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m.SubmitSell(symbol, 100, 1) // nolint
				m.SubmitBuy(symbol, 100, 1)  // nolint
			}
		}()
	}
	wg.Wait()

	for s := 0; s < 8; s++ {
		snap := m.Snapshot(fmt.Sprintf("SYM-%d", s))
		if len(snap.Buys) != 0 || len(snap.Sells) != 0 {
			t.Fatalf("symbol %d books should be empty: %+v", s, snap)
		}
	}
}
