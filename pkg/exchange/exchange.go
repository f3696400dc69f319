package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	eventstore "github.com/joripage/stock-exchange/pkg/exchange/eventstore"
	"github.com/joripage/stock-exchange/pkg/exchange/model"
	"github.com/joripage/stock-exchange/pkg/orderbook"
)

// MarketDataPublisher receives trade batches and book snapshots produced by
// the engines.
type MarketDataPublisher interface {
	PublishTrades(trades []orderbook.Trade)
	PublishSnapshot(snap orderbook.Snapshot)
}

// OrderEventPublisher receives a copy of every order event for the ledger
// pipeline.
type OrderEventPublisher interface {
	PublishOrderEvent(ev *model.OrderEvent)
}

// Exchange is the order-management layer above the matching engines:
// validation, order IDs, status bookkeeping, order events and client
// reports. Matching itself lives in pkg/orderbook.
type Exchange struct {
	orderGateway   OrderGateway
	engineManager  *orderbook.EngineManager
	eventstore     eventstore.EventStore
	eventPublisher OrderEventPublisher

	orderIDMapping orderMapping
	stopCh         chan struct{}
}

func NewExchange(orderGateway OrderGateway, publisher MarketDataPublisher, eventPublisher OrderEventPublisher) *Exchange {
	engineManager := orderbook.NewEngineManager()
	if publisher != nil {
		engineManager.RegisterTradeCallback(publisher.PublishTrades)
		engineManager.RegisterBookCallback(publisher.PublishSnapshot)
	}

	return &Exchange{
		orderGateway:   orderGateway,
		engineManager:  engineManager,
		eventstore:     eventstore.NewInMemoryEventStore(),
		eventPublisher: eventPublisher,
		stopCh:         make(chan struct{}),
	}
}

func (s *Exchange) Start(ctx context.Context) error {
	go s.startCleaner(10 * time.Second)
	if s.orderGateway == nil {
		return nil
	}
	return s.orderGateway.Start(ctx)
}

func (s *Exchange) Stop() {
	close(s.stopCh)
}

// AddOrder validates and submits one incoming order. An invalid price or
// quantity is rejected before any book is touched; the rejection is reported
// back through the gateway and returned as orderbook.ErrInvalidOrder.
func (s *Exchange) AddOrder(ctx context.Context, addOrder *model.AddOrder) error {
	if addOrder.GatewayID != "" && s.eventstore.GetOrderID(addOrder.GatewayID) != "" {
		return errDuplicateOrder
	}

	order := &model.Order{}
	order.UpdateAddOrder(addOrder)
	order.OrderID = uuid.New().String()

	if !addOrder.Price.IsPositive() || !addOrder.Quantity.IsPositive() {
		order.ExecID = uuid.New().String()
		order.Reject("non-positive price or quantity")
		s.recordAndReport(ctx, order)
		return fmt.Errorf("%w: %s %s@%s", orderbook.ErrInvalidOrder,
			addOrder.Side, addOrder.Quantity, addOrder.Price)
	}

	s.AddOrderToMap(order)

	trades, err := s.engineManager.Submit(order.Symbol, orderbook.NewOrder(
		order.OrderID,
		orderbook.Side(order.Side),
		order.Price.InexactFloat64(),
		order.Quantity.IntPart(),
	))
	if err != nil {
		// a broken invariant aborts the submission; nothing is retried
		zap.S().Errorw("submission aborted", "order_id", order.OrderID, "err", err)
		s.DeleteOrderByOrderID(order.OrderID)
		return err
	}

	// booked: PendingNew -> New
	order.Status = model.OrderStatusNew
	order.ExecType = model.ExecTypeNew
	order.ExecID = uuid.New().String()
	s.recordAndReport(ctx, order)

	s.processTrades(ctx, trades)

	return nil
}

// Snapshot exposes the current resting orders of one instrument.
func (s *Exchange) Snapshot(symbol string) orderbook.Snapshot {
	return s.engineManager.Snapshot(symbol)
}

func (s *Exchange) processTrades(ctx context.Context, trades []orderbook.Trade) {
	for _, trade := range trades {
		s.applyFill(ctx, trade.BuyOrderID, trade)
		s.applyFill(ctx, trade.SellOrderID, trade)
	}
}

func (s *Exchange) applyFill(ctx context.Context, orderID string, trade orderbook.Trade) {
	order, err := s.GetOrderByOrderID(orderID)
	if err != nil {
		zap.S().Warnw("fill for unknown order", "order_id", orderID, "err", err)
		return
	}

	order.ApplyFill(trade.Qty, trade.Price)
	order.ExecID = uuid.New().String()
	s.recordAndReport(ctx, order)
}

func (s *Exchange) recordAndReport(ctx context.Context, order *model.Order) {
	bkOrder := *order
	ev := model.NewOrderEvent(bkOrder, time.Now())
	s.eventstore.AddEvent(ev)
	if s.eventPublisher != nil {
		s.eventPublisher.PublishOrderEvent(ev)
	}
	if s.orderGateway != nil {
		s.orderGateway.OnOrderReport(ctx, bkOrder)
	}
}
