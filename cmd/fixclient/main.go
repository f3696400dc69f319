package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/quickfixgo/enum"
	"github.com/quickfixgo/field"
	fix44nos "github.com/quickfixgo/fix44/newordersingle"
	"github.com/quickfixgo/quickfix"
	"github.com/quickfixgo/quickfix/log/file"
	"github.com/shopspring/decimal"
)

type InitiatorApp struct {
	sessionID *quickfix.SessionID
}

func (a *InitiatorApp) OnCreate(sessionID quickfix.SessionID) {
	a.sessionID = &sessionID
}

func (a *InitiatorApp) OnLogon(sessionID quickfix.SessionID) {
	log.Println("Logon success", sessionID)
	sendScenario(sessionID)
}

func (a *InitiatorApp) OnLogout(sessionID quickfix.SessionID)                       {}
func (a *InitiatorApp) ToAdmin(msg *quickfix.Message, sessionID quickfix.SessionID) {}
func (a *InitiatorApp) ToApp(msg *quickfix.Message, sessionID quickfix.SessionID) error {
	return nil
}
func (a *InitiatorApp) FromAdmin(msg *quickfix.Message, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	return nil
}
func (a *InitiatorApp) FromApp(msg *quickfix.Message, sessionID quickfix.SessionID) quickfix.MessageRejectError {
	log.Println("execution report:", msg.String())
	return nil
}

func newLimitOrder(sessionID quickfix.SessionID, side enum.Side, price, qty int64) fix44nos.NewOrderSingle {
	order := fix44nos.New(
		field.NewClOrdID(""),
		field.NewSide(side),
		field.NewTransactTime(time.Now()),
		field.NewOrdType(enum.OrdType_LIMIT))
	order.SetSymbol("ABC")
	order.SetAccount("011C399158")
	order.SetPrice(decimal.NewFromInt(price), 0)
	order.SetOrderQty(decimal.NewFromInt(qty), 0)
	order.SetTimeInForce(enum.TimeInForce_DAY)
	order.SetSenderCompID(sessionID.SenderCompID)
	order.SetTargetCompID(sessionID.TargetCompID)
	order.SetClOrdID(randSeq(17))
	return order
}

// sendScenario books three buys, then sends two crossing sells and one that
// rests far above the book.
func sendScenario(sessionID quickfix.SessionID) {
	orders := []struct {
		side  enum.Side
		price int64
		qty   int64
	}{
		{enum.Side_BUY, 80, 10},
		{enum.Side_BUY, 100, 4},
		{enum.Side_BUY, 95, 25},
		{enum.Side_SELL, 90, 5},
		{enum.Side_SELL, 92, 15},
		{enum.Side_SELL, 1000, 5},
	}

	for _, o := range orders {
		if err := quickfix.Send(newLimitOrder(sessionID, o.side, o.price, o.qty)); err != nil {
			log.Println("send err:", err)
		}
	}
}

func main() {
	cfgPath := os.Args[1]
	log.Println("cfgPath:", cfgPath)
	app := &InitiatorApp{}

	cfg, err := os.Open(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cfg.Close() // nolint

	settings, err := quickfix.ParseSettings(cfg)
	if err != nil {
		log.Fatal(err)
	}

	storeFactory := quickfix.NewMemoryStoreFactory()
	logFactory, _ := file.NewLogFactory(settings)
	initiator, err := quickfix.NewInitiator(app, storeFactory, settings, logFactory)
	if err != nil {
		log.Fatal(err)
	}
	err = initiator.Start()
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Initiator started...")
	select {}
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func randSeq(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
