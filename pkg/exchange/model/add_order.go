package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddOrder struct {
	GatewayID    string
	Account      string
	Symbol       string
	Type         OrderType
	Side         OrderSide
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	TransactTime time.Time
}
