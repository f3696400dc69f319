package fixgateway

import (
	"log"
	"sync"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/fix44/executionreport"
	"github.com/quickfixgo/quickfix"
	"github.com/shopspring/decimal"
)

var sideToFixMapping = map[model.OrderSide]enum.Side{
	model.OrderSideBuy:  enum.Side_BUY,
	model.OrderSideSell: enum.Side_SELL,
}

// messagePool recycles quickfix messages between execution reports.
type messagePool struct {
	pool sync.Pool
}

func newMessagePool() *messagePool {
	return &messagePool{
		pool: sync.Pool{
			New: func() interface{} {
				m := quickfix.NewMessage()
				resetMessage(m)
				return m
			},
		},
	}
}

func (mp *messagePool) Get() *quickfix.Message {
	m := mp.pool.Get().(*quickfix.Message)
	resetMessage(m)
	return m
}

func (mp *messagePool) Put(m *quickfix.Message) {
	resetMessage(m)
	mp.pool.Put(m)
}

func resetMessage(m *quickfix.Message) {
	m.Header.Init()
	m.Body.Init()
	m.Trailer.Init()
	m.Header.Clear()
	m.Body.Clear()
	m.Trailer.Clear()
}

var execReportPool = newMessagePool()

func orderReportToExecutionReport(order model.Order, sessionID *quickfix.SessionID) error {
	msg := execReportPool.Get()
	execReportMsg := buildExecutionReport(msg, order)

	if err := quickfix.SendToTarget(execReportMsg, *sessionID); err != nil {
		log.Printf("send err=%v", err)
		return err
	}

	execReportPool.Put(msg)

	return nil
}

func buildExecutionReport(msg *quickfix.Message, order model.Order) executionreport.ExecutionReport {
	execReportMsg := executionreport.FromMessage(msg)

	execReportMsg.SetMsgType(enum.MsgType_EXECUTION_REPORT)
	execReportMsg.SetOrderID(order.OrderID)
	execReportMsg.SetExecID(order.ExecID)
	execReportMsg.SetSide(sideToFixMapping[order.Side])
	execReportMsg.SetLeavesQty(decimal.NewFromInt(order.LeavesQuantity), 0)
	execReportMsg.SetCumQty(decimal.NewFromInt(order.CumQuantity), 0)
	execReportMsg.SetAvgPx(decimal.NewFromFloat(order.LastPrice), 2)

	execReportMsg.SetClOrdID(order.GatewayID)
	execReportMsg.SetAccount(order.Account)
	execReportMsg.SetSymbol(order.Symbol)
	execReportMsg.SetOrderQty(order.Quantity, 0)
	execReportMsg.SetPrice(order.Price, 0)
	execReportMsg.SetTransactTime(order.TransactTime)
	execReportMsg.SetLastQty(decimal.NewFromInt(order.LastQuantity), 0)
	execReportMsg.SetLastPx(decimal.NewFromFloat(order.LastPrice), 2)
	if order.Text != "" {
		execReportMsg.SetText(order.Text)
	}

	switch order.Status {
	case model.OrderStatusPendingNew:
		execReportMsg.SetExecType(enum.ExecType_PENDING_NEW)
		execReportMsg.SetOrdStatus(enum.OrdStatus_PENDING_NEW)
	case model.OrderStatusNew:
		execReportMsg.SetExecType(enum.ExecType_NEW)
		execReportMsg.SetOrdStatus(enum.OrdStatus_NEW)
	case model.OrderStatusPartiallyFilled:
		execReportMsg.SetExecType(enum.ExecType_TRADE)
		execReportMsg.SetOrdStatus(enum.OrdStatus_PARTIALLY_FILLED)
	case model.OrderStatusFilled:
		execReportMsg.SetExecType(enum.ExecType_TRADE)
		execReportMsg.SetOrdStatus(enum.OrdStatus_FILLED)
	case model.OrderStatusRejected:
		execReportMsg.SetExecType(enum.ExecType_REJECTED)
		execReportMsg.SetOrdStatus(enum.OrdStatus_REJECTED)
	}

	return execReportMsg
}
