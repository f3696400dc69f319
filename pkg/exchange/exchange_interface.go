package exchange

import (
	"context"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
)

type IExchange interface {
	AddOrder(ctx context.Context, addOrder *model.AddOrder) error
}
