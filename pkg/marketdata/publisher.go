package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/deque"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/joripage/stock-exchange/pkg/exchange/model"
	kafkawrapper "github.com/joripage/stock-exchange/pkg/kafkawrapper"
	"github.com/joripage/stock-exchange/pkg/orderbook"
)

const (
	snapshotKeyPrefix = "book:snapshot:"
	maxQueue          = 10_000
)

type Config struct {
	TradeTopic      string        `yaml:"trade_topic"`
	OrderEventTopic string        `yaml:"order_event_topic"`
	SnapshotTTL     time.Duration `yaml:"snapshot_ttl"`
}

type item struct {
	snap   *orderbook.Snapshot
	trades []orderbook.Trade
	event  *model.OrderEvent
}

// Publisher fans engine output to external consumers: latest book snapshot
// per symbol into Redis, trades and order events onto Kafka. Submissions
// only pay for an enqueue; a single goroutine drains the queue. When the
// queue is full the oldest item is dropped, the snapshot key is
// last-write-wins anyway.
type Publisher struct {
	redisClient *redis.Client
	producer    *kafkawrapper.Producer
	cfg         *Config

	mu     sync.Mutex
	queue  deque.Deque[item]
	notify chan struct{}
}

func NewPublisher(redisClient *redis.Client, producer *kafkawrapper.Producer, cfg *Config) *Publisher {
	if cfg.TradeTopic == "" {
		cfg.TradeTopic = "exchange.trades"
	}
	if cfg.OrderEventTopic == "" {
		cfg.OrderEventTopic = "exchange.order_events"
	}

	return &Publisher{
		redisClient: redisClient,
		producer:    producer,
		cfg:         cfg,
		notify:      make(chan struct{}, 1),
	}
}

func (p *Publisher) Start(ctx context.Context) {
	go p.run(ctx)
}

// PublishSnapshot implements exchange.MarketDataPublisher.
func (p *Publisher) PublishSnapshot(snap orderbook.Snapshot) {
	p.enqueue(item{snap: &snap})
}

// PublishTrades implements exchange.MarketDataPublisher.
func (p *Publisher) PublishTrades(trades []orderbook.Trade) {
	p.enqueue(item{trades: trades})
}

// PublishOrderEvent implements exchange.OrderEventPublisher.
func (p *Publisher) PublishOrderEvent(ev *model.OrderEvent) {
	p.enqueue(item{event: ev})
}

func (p *Publisher) enqueue(it item) {
	p.mu.Lock()
	if p.queue.Len() >= maxQueue {
		p.queue.PopFront()
	}
	p.queue.PushBack(it)
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

func (p *Publisher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.notify:
		}

		for {
			p.mu.Lock()
			if p.queue.Len() == 0 {
				p.mu.Unlock()
				break
			}
			it := p.queue.PopFront()
			p.mu.Unlock()

			p.publish(ctx, it)
		}
	}
}

func (p *Publisher) publish(ctx context.Context, it item) {
	switch {
	case it.snap != nil:
		p.publishSnapshot(ctx, it.snap)
	case it.trades != nil:
		p.publishTrades(ctx, it.trades)
	case it.event != nil:
		p.publishOrderEvent(ctx, it.event)
	}
}

func (p *Publisher) publishSnapshot(ctx context.Context, snap *orderbook.Snapshot) {
	if p.redisClient == nil {
		return
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		zap.S().Errorw("marshal snapshot", "symbol", snap.Symbol, "err", err)
		return
	}

	key := snapshotKeyPrefix + snap.Symbol
	if err := p.redisClient.Set(ctx, key, payload, p.cfg.SnapshotTTL).Err(); err != nil {
		zap.S().Errorw("publish snapshot", "key", key, "err", err)
	}
}

func (p *Publisher) publishTrades(ctx context.Context, trades []orderbook.Trade) {
	if p.producer == nil {
		return
	}

	for _, trade := range trades {
		record := model.Trade{
			Symbol:      trade.Symbol,
			BuyOrderID:  trade.BuyOrderID,
			SellOrderID: trade.SellOrderID,
			Price:       trade.Price,
			Qty:         trade.Qty,
			CreatedAt:   time.Now(),
		}
		if err := p.producer.PublishJSON(ctx, p.cfg.TradeTopic, trade.Symbol, record); err != nil {
			zap.S().Errorw("publish trade", "symbol", trade.Symbol, "err", err)
		}
	}
}

func (p *Publisher) publishOrderEvent(ctx context.Context, ev *model.OrderEvent) {
	if p.producer == nil {
		return
	}

	key := fmt.Sprintf("%s:%s", ev.Symbol, ev.OrderID)
	if err := p.producer.PublishJSON(ctx, p.cfg.OrderEventTopic, key, ev); err != nil {
		zap.S().Errorw("publish order event", "order_id", ev.OrderID, "err", err)
	}
}
