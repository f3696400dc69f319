package exchange

import (
	"sync"
	"time"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
)

type orderMapping struct {
	orders sync.Map
}

func (s *Exchange) AddOrderToMap(order *model.Order) {
	s.orderIDMapping.orders.Store(order.OrderID, order)
}

func (s *Exchange) GetOrderByOrderID(orderID string) (*model.Order, error) {
	order, ok := s.orderIDMapping.orders.Load(orderID)
	if !ok {
		return nil, errOrderIDNotFound
	}

	return order.(*model.Order), nil
}

func (s *Exchange) DeleteOrderByOrderID(orderID string) {
	s.orderIDMapping.orders.Delete(orderID)
}

// startCleaner drops terminal orders from the in-memory maps periodically.
func (s *Exchange) startCleaner(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Exchange) cleanup() {
	s.orderIDMapping.orders.Range(func(k, v any) bool {
		order := v.(*model.Order)
		if order.IsEnd() {
			s.DeleteOrderByOrderID(order.OrderID)
			s.eventstore.DeleteByOrderID(order.OrderID)
		}
		return true
	})
}
