package eventstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
)

func newEvent(orderID, gatewayID string, status model.OrderStatus) *model.OrderEvent {
	return &model.OrderEvent{
		EventID:   model.NewEventID(orderID, "exec", status),
		OrderID:   orderID,
		GatewayID: gatewayID,
		Symbol:    "VIC",
		Status:    status,
		Timestamp: time.Now(),
	}
}

func TestAddAndLookup(t *testing.T) {
	s := NewInMemoryEventStore()

	s.AddEvent(newEvent("O1", "C1", model.OrderStatusNew))
	s.AddEvent(newEvent("O1", "C1", model.OrderStatusFilled))

	events := s.Events("O1")
	require.Len(t, events, 2)
	assert.Equal(t, model.OrderStatusNew, events[0].Status)
	assert.Equal(t, model.OrderStatusFilled, events[1].Status)

	assert.Equal(t, "O1", s.GetOrderID("C1"))
	assert.Empty(t, s.GetOrderID("unknown"))
}

func TestDeleteByOrderID(t *testing.T) {
	s := NewInMemoryEventStore()

	s.AddEvent(newEvent("O1", "C1", model.OrderStatusNew))
	s.AddEvent(newEvent("O2", "C2", model.OrderStatusNew))

	s.DeleteByOrderID("O1")

	assert.Empty(t, s.Events("O1"))
	assert.Empty(t, s.GetOrderID("C1"))
	assert.Equal(t, "O2", s.GetOrderID("C2"))
}

func TestEventWithoutGatewayID(t *testing.T) {
	s := NewInMemoryEventStore()

	s.AddEvent(newEvent("O1", "", model.OrderStatusNew))

	require.Len(t, s.Events("O1"), 1)
	assert.Empty(t, s.GetOrderID(""))
}
