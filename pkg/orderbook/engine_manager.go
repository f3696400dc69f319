package orderbook

import "sync"

// EngineManager routes orders to one Engine per symbol. Engines are created
// lazily and never share state, submissions for different symbols run in
// parallel.
type EngineManager struct {
	engines sync.Map

	mu             sync.Mutex
	tradeCallbacks []func([]Trade)
	bookCallbacks  []func(Snapshot)
}

func NewEngineManager() *EngineManager {
	return &EngineManager{}
}

func (m *EngineManager) Submit(symbol string, order *Order) ([]Trade, error) {
	return m.getOrCreateEngine(symbol).Submit(order)
}

func (m *EngineManager) SubmitBuy(symbol string, price float64, qty int64) ([]Trade, error) {
	return m.getOrCreateEngine(symbol).SubmitBuy(price, qty)
}

func (m *EngineManager) SubmitSell(symbol string, price float64, qty int64) ([]Trade, error) {
	return m.getOrCreateEngine(symbol).SubmitSell(price, qty)
}

func (m *EngineManager) Snapshot(symbol string) Snapshot {
	return m.getOrCreateEngine(symbol).Snapshot()
}

// RegisterTradeCallback applies the callback to every existing and future
// engine.
func (m *EngineManager) RegisterTradeCallback(fn func([]Trade)) {
	m.mu.Lock()
	m.tradeCallbacks = append(m.tradeCallbacks, fn)
	m.mu.Unlock()

	m.engines.Range(func(_, v any) bool {
		v.(*Engine).RegisterTradeCallback(fn)
		return true
	})
}

// RegisterBookCallback applies the callback to every existing and future
// engine.
func (m *EngineManager) RegisterBookCallback(fn func(Snapshot)) {
	m.mu.Lock()
	m.bookCallbacks = append(m.bookCallbacks, fn)
	m.mu.Unlock()

	m.engines.Range(func(_, v any) bool {
		v.(*Engine).RegisterBookCallback(fn)
		return true
	})
}

func (m *EngineManager) getOrCreateEngine(symbol string) *Engine {
	if val, ok := m.engines.Load(symbol); ok {
		return val.(*Engine)
	}

	engine := NewEngine(symbol)
	m.mu.Lock()
	for _, cb := range m.tradeCallbacks {
		engine.RegisterTradeCallback(cb)
	}
	for _, cb := range m.bookCallbacks {
		engine.RegisterBookCallback(cb)
	}
	m.mu.Unlock()

	actual, _ := m.engines.LoadOrStore(symbol, engine)
	return actual.(*Engine)
}
