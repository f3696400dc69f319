package eventstore

import "github.com/joripage/stock-exchange/pkg/exchange/model"

type EventStore interface {
	AddEvent(ev *model.OrderEvent)
	Events(orderID string) []*model.OrderEvent

	// gateway (client) order ID -> engine order ID, used for duplicate
	// submission detection
	GetOrderID(gatewayID string) string
	DeleteByOrderID(orderID string)
}
