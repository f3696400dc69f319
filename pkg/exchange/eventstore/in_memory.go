package eventstore

import (
	"sync"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
)

type InMemoryEventStore struct {
	mu        sync.RWMutex
	orders    map[string][]*model.OrderEvent // OrderID -> events
	orderIDs  map[string]string              // GatewayID -> OrderID
	gatewayID map[string]string              // OrderID -> GatewayID
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		orders:    make(map[string][]*model.OrderEvent),
		orderIDs:  make(map[string]string),
		gatewayID: make(map[string]string),
	}
}

func (s *InMemoryEventStore) AddEvent(ev *model.OrderEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[ev.OrderID] = append(s.orders[ev.OrderID], ev)
	if ev.GatewayID != "" {
		s.orderIDs[ev.GatewayID] = ev.OrderID
		s.gatewayID[ev.OrderID] = ev.GatewayID
	}
}

func (s *InMemoryEventStore) Events(orderID string) []*model.OrderEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.orders[orderID]
}

func (s *InMemoryEventStore) GetOrderID(gatewayID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.orderIDs[gatewayID]
}

// DeleteByOrderID drops a finished order's events and ID mappings.
func (s *InMemoryEventStore) DeleteByOrderID(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gatewayID, ok := s.gatewayID[orderID]; ok {
		delete(s.orderIDs, gatewayID)
		delete(s.gatewayID, orderID)
	}
	delete(s.orders, orderID)
}
