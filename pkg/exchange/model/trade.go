package model

import "time"

// Trade is one executed fill as stored in the ledger. Price is the resting
// order's limit price.
type Trade struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement;column:id"`
	Symbol      string    `json:"symbol" gorm:"column:symbol"`
	BuyOrderID  string    `json:"buy_order_id" gorm:"column:buy_order_id"`
	SellOrderID string    `json:"sell_order_id" gorm:"column:sell_order_id"`
	Price       float64   `json:"price" gorm:"column:price"`
	Qty         int64     `json:"qty" gorm:"column:qty"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Trade) TableName() string {
	return "trades"
}
