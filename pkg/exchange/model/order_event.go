package model

import (
	"fmt"
	"time"
)

// OrderEvent is one order state transition, persisted by the ledger worker.
type OrderEvent struct {
	EventID   string        `json:"event_id" gorm:"primaryKey;column:event_id"`
	OrderID   string        `json:"order_id" gorm:"column:order_id"`
	GatewayID string        `json:"gateway_id" gorm:"column:gateway_id"`
	Symbol    string        `json:"symbol" gorm:"column:symbol"`
	Side      OrderSide     `json:"side" gorm:"column:side"`
	ExecType  OrderExecType `json:"exec_type" gorm:"column:exec_type"`
	Status    OrderStatus   `json:"status" gorm:"column:status"`
	LastQty   int64         `json:"last_qty" gorm:"column:last_qty"`
	LeavesQty int64         `json:"leaves_qty" gorm:"column:leaves_qty"`
	CumQty    int64         `json:"cum_qty" gorm:"column:cum_qty"`
	Price     float64       `json:"price" gorm:"column:price"`
	Timestamp time.Time     `json:"timestamp" gorm:"column:ts"`
}

func (OrderEvent) TableName() string {
	return "order_events"
}

func NewOrderEvent(order Order, ts time.Time) *OrderEvent {
	return &OrderEvent{
		EventID:   NewEventID(order.OrderID, order.ExecID, order.Status),
		OrderID:   order.OrderID,
		GatewayID: order.GatewayID,
		Symbol:    order.Symbol,
		Side:      order.Side,
		ExecType:  order.ExecType,
		Status:    order.Status,
		LastQty:   order.LastQuantity,
		LeavesQty: order.LeavesQuantity,
		CumQty:    order.CumQuantity,
		Price:     order.LastPrice,
		Timestamp: ts,
	}
}

func NewEventID(orderID, execID string, status OrderStatus) string {
	return fmt.Sprintf("%s-%s-%s", orderID, execID, status)
}
