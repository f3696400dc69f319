package fixgateway

import (
	"context"
	"log"
	"sync"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/quickfix"

	"github.com/joripage/stock-exchange/pkg/exchange"
	"github.com/joripage/stock-exchange/pkg/exchange/model"
)

var sideMapping = map[enum.Side]model.OrderSide{
	enum.Side_BUY:  model.OrderSideBuy,
	enum.Side_SELL: model.OrderSideSell,
}

type FixGateway struct {
	cfg              *FixGatewayConfig
	app              *Application
	exchangeInstance exchange.IExchange

	requestMapping sync.Map // ClOrdID -> SessionID
}

type FixGatewayConfig struct {
	ConfigFilepath string
}

func NewFixGateway(cfg *FixGatewayConfig) *FixGateway {
	return &FixGateway{
		cfg: cfg,
	}
}

func (s *FixGateway) AddExchangeInstance(e exchange.IExchange) {
	s.exchangeInstance = e
}

func (s *FixGateway) Start(ctx context.Context) error {
	app, err := startApp(s.cfg.ConfigFilepath, s)
	if err != nil {
		log.Printf("start app err=%v", err)
		return err
	}
	s.app = app
	return nil
}

func (s *FixGateway) Stop() {
	if s.app != nil {
		stopApp(s.app)
	}
}

func (s *FixGateway) AddOrder(ctx context.Context, newOrderSingle *NewOrderSingle) {
	s.AddRequestToMap(newOrderSingle.ClOrdID, newOrderSingle.SessionID)

	side, ok := sideMapping[newOrderSingle.Side]
	if !ok {
		s.rejectNewOrder(newOrderSingle, "unknown side")
		return
	}
	if newOrderSingle.OrdType != enum.OrdType_LIMIT {
		s.rejectNewOrder(newOrderSingle, "only limit orders are supported")
		return
	}
	switch newOrderSingle.TimeInForce {
	case "", enum.TimeInForce_DAY, enum.TimeInForce_GOOD_TILL_CANCEL:
	default:
		s.rejectNewOrder(newOrderSingle, "unsupported time in force")
		return
	}

	err := s.exchangeInstance.AddOrder(ctx, &model.AddOrder{
		GatewayID:    newOrderSingle.ClOrdID,
		Account:      newOrderSingle.Account,
		Symbol:       newOrderSingle.Symbol,
		Type:         model.OrderTypeLimit,
		Price:        newOrderSingle.Price,
		Side:         side,
		TransactTime: newOrderSingle.TransactTime,
		Quantity:     newOrderSingle.OrderQty,
	})
	if err != nil {
		// invalid orders were already reported through OnOrderReport
		log.Printf("add order clOrdID=%s err=%v", newOrderSingle.ClOrdID, err)
	}
}

func (s *FixGateway) OnOrderReport(ctx context.Context, order model.Order) {
	sessionID, err := s.GetSessionByClOrdID(order.GatewayID)
	if err != nil {
		log.Printf("report orderID=%s: session not found", order.OrderID)
		return
	}

	orderBK := order
	go func() {
		if err := orderReportToExecutionReport(orderBK, sessionID); err != nil {
			log.Printf("send report orderID=%s err=%v", orderBK.OrderID, err)
		}
	}()
}

func (s *FixGateway) rejectNewOrder(newOrderSingle *NewOrderSingle, reason string) {
	order := model.Order{
		GatewayID:    newOrderSingle.ClOrdID,
		Account:      newOrderSingle.Account,
		Symbol:       newOrderSingle.Symbol,
		Side:         sideMapping[newOrderSingle.Side],
		Price:        newOrderSingle.Price,
		Quantity:     newOrderSingle.OrderQty,
		TransactTime: newOrderSingle.TransactTime,
	}
	order.Reject(reason)
	s.OnOrderReport(context.Background(), order)
}

func (s *FixGateway) AddRequestToMap(clOrdID string, sessionID *quickfix.SessionID) {
	s.requestMapping.Store(clOrdID, sessionID)
}

func (s *FixGateway) GetSessionByClOrdID(clOrdID string) (*quickfix.SessionID, error) {
	val, ok := s.requestMapping.Load(clOrdID)
	if !ok {
		return nil, errSessionNotFound
	}
	return val.(*quickfix.SessionID), nil
}
