package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingNew      OrderStatus = "PendingNew"
	OrderStatusNew             OrderStatus = "New"
	OrderStatusPartiallyFilled OrderStatus = "PartiallyFilled"
	OrderStatusFilled          OrderStatus = "Filled"
	OrderStatusRejected        OrderStatus = "Rejected"
)

type OrderExecType string

const (
	ExecTypeNew      OrderExecType = "New"
	ExecTypeTrade    OrderExecType = "Trade"
	ExecTypeRejected OrderExecType = "Rejected"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

type OrderType string

const (
	OrderTypeLimit OrderType = "LIMIT"
)

type Order struct {
	// init info
	GatewayID    string
	Account      string
	Symbol       string
	Side         OrderSide
	Type         OrderType
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	TransactTime time.Time

	// calculated info
	OrderID        string
	ExecID         string
	Status         OrderStatus
	ExecType       OrderExecType
	CumQuantity    int64
	LeavesQuantity int64
	LastQuantity   int64
	LastPrice      float64
	Text           string
}

func (o *Order) UpdateAddOrder(addOrder *AddOrder) {
	o.GatewayID = addOrder.GatewayID
	o.Account = addOrder.Account
	o.Symbol = addOrder.Symbol
	o.Side = addOrder.Side
	o.Type = addOrder.Type
	o.Price = addOrder.Price
	o.Quantity = addOrder.Quantity
	o.TransactTime = addOrder.TransactTime

	o.Status = OrderStatusPendingNew
	o.ExecType = ExecTypeNew
	o.LeavesQuantity = addOrder.Quantity.IntPart()
}

// ApplyFill moves cum/leaves quantities after one execution step and
// transitions the status to PartiallyFilled or Filled.
func (o *Order) ApplyFill(qty int64, price float64) {
	o.CumQuantity += qty
	o.LeavesQuantity -= qty
	o.LastQuantity = qty
	o.LastPrice = price

	o.ExecType = ExecTypeTrade
	if o.LeavesQuantity <= 0 {
		o.Status = OrderStatusFilled
	} else {
		o.Status = OrderStatusPartiallyFilled
	}
}

func (o *Order) Reject(reason string) {
	o.Status = OrderStatusRejected
	o.ExecType = ExecTypeRejected
	o.LeavesQuantity = 0
	o.Text = reason
}

// IsEnd reports whether no further transition can happen to the order.
func (o *Order) IsEnd() bool {
	return o.Status == OrderStatusFilled || o.Status == OrderStatusRejected
}
