package fixgateway

import (
	"testing"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/quickfix"
	"github.com/quickfixgo/tag"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
)

var testOrder = model.Order{
	OrderID:        "O1",
	ExecID:         "E1",
	ExecType:       model.ExecTypeTrade,
	Status:         model.OrderStatusPartiallyFilled,
	Side:           model.OrderSideBuy,
	LeavesQuantity: 60,
	CumQuantity:    40,
	LastQuantity:   40,
	LastPrice:      95,
	GatewayID:      "C1",
	Account:        "ACC1",
	Symbol:         "VIC",
	Quantity:       decimal.NewFromInt(100),
	Price:          decimal.NewFromInt(95),
	TransactTime:   time.Now(),
}

func TestBuildExecutionReport(t *testing.T) {
	msg := execReportPool.Get()
	defer execReportPool.Put(msg)

	report := buildExecutionReport(msg, testOrder)

	getString := func(fixTag quickfix.Tag) string {
		v, err := report.Body.GetString(fixTag)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "O1", getString(tag.OrderID))
	assert.Equal(t, "C1", getString(tag.ClOrdID))
	assert.Equal(t, "VIC", getString(tag.Symbol))
	assert.Equal(t, string(enum.ExecType_TRADE), getString(tag.ExecType))
	assert.Equal(t, string(enum.OrdStatus_PARTIALLY_FILLED), getString(tag.OrdStatus))
	assert.Equal(t, string(enum.Side_BUY), getString(tag.Side))
	assert.Equal(t, "60", getString(tag.LeavesQty))
	assert.Equal(t, "40", getString(tag.CumQty))
	assert.Equal(t, "40", getString(tag.LastQty))
}

func TestBuildExecutionReportRejected(t *testing.T) {
	order := testOrder
	order.Status = model.OrderStatusRejected
	order.ExecType = model.ExecTypeRejected
	order.Text = "unsupported order type"

	msg := execReportPool.Get()
	defer execReportPool.Put(msg)

	report := buildExecutionReport(msg, order)

	status, err := report.Body.GetString(tag.OrdStatus)
	require.NoError(t, err)
	assert.Equal(t, string(enum.OrdStatus_REJECTED), status)

	text, err := report.Body.GetString(tag.Text)
	require.NoError(t, err)
	assert.Equal(t, "unsupported order type", text)
}

func TestMessagePoolReuse(t *testing.T) {
	msg := execReportPool.Get()
	buildExecutionReport(msg, testOrder)
	execReportPool.Put(msg)

	recycled := execReportPool.Get()
	defer execReportPool.Put(recycled)

	_, err := recycled.Body.GetString(tag.OrderID)
	assert.Error(t, err, "recycled message should come back empty")
}

func BenchmarkBuildExecutionReport(b *testing.B) {
	for i := 0; i < b.N; i++ {
		msg := execReportPool.Get()
		_ = buildExecutionReport(msg, testOrder)
		execReportPool.Put(msg)
	}
}
