package worker

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
	"github.com/joripage/stock-exchange/pkg/exchange/repo"
	kafkawrapper "github.com/joripage/stock-exchange/pkg/kafkawrapper"
	_ "github.com/lib/pq"
)

// Worker consumes the trade and order-event topics and persists the rows.
type Worker struct {
	trade      repo.ITrade
	orderEvent repo.IOrderEvent
}

func NewWorker(repo repo.IRepo) *Worker {
	return &Worker{
		trade:      repo.Trade(),
		orderEvent: repo.OrderEvent(),
	}
}

func (w *Worker) StartTradeConsumer(ctx context.Context, cg *kafkawrapper.ConsumerGroup) error {
	return cg.Run(ctx, func(ctx context.Context, msgs []kafkawrapper.Message) error {
		records := make([]*model.Trade, 0, len(msgs))
		for _, msg := range msgs {
			var trade model.Trade
			if err := json.Unmarshal(msg.Value, &trade); err != nil {
				zap.S().Warnw("skip malformed trade", "offset", msg.Offset, "err", err)
				continue
			}
			records = append(records, &trade)
		}
		if len(records) == 0 {
			return nil
		}
		_, err := w.trade.BulkCreate(ctx, records)
		return err
	})
}

func (w *Worker) StartOrderEventConsumer(ctx context.Context, cg *kafkawrapper.ConsumerGroup) error {
	return cg.Run(ctx, func(ctx context.Context, msgs []kafkawrapper.Message) error {
		records := make([]*model.OrderEvent, 0, len(msgs))
		for _, msg := range msgs {
			var ev model.OrderEvent
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				zap.S().Warnw("skip malformed order event", "offset", msg.Offset, "err", err)
				continue
			}
			records = append(records, &ev)
		}
		if len(records) == 0 {
			return nil
		}
		_, err := w.orderEvent.BulkCreate(ctx, records)
		return err
	})
}
