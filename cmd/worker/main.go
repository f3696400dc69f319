package main

import (
	"context"
	"encoding/json"
	"flag"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/joripage/stock-exchange/config"
	"github.com/joripage/stock-exchange/pkg/exchange/repo"
	"github.com/joripage/stock-exchange/pkg/exchange/worker"
	postgres_wrapper "github.com/joripage/stock-exchange/pkg/infra/postgres"
	"github.com/joripage/stock-exchange/pkg/kafkawrapper"
	"github.com/joripage/stock-exchange/pkg/logging"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "", "Specify config file path")
	flag.Parse()

	logging.InitGlobal(logging.INFO)

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}

	configBytes, err := json.MarshalIndent(cfg, "", "   ")
	if err != nil {
		zap.S().Warnf("could not convert config to JSON: %v", err)
	} else {
		zap.S().Debugf("load config %s", string(configBytes))
	}

	ctx := context.Background()

	db := postgres_wrapper.InitPostgresWithBackoff(cfg.LedgerDB)

	sqlRepo := repo.NewRepo(db)

	tradeConsumer := kafkawrapper.NewConsumerGroup(kafkawrapper.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.WorkerGroupID,
		Topic:   cfg.Kafka.TradeTopic,
	})
	eventConsumer := kafkawrapper.NewConsumerGroup(kafkawrapper.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		GroupID: cfg.Kafka.WorkerGroupID,
		Topic:   cfg.Kafka.OrderEventTopic,
	})

	w := worker.NewWorker(sqlRepo)
	go func() {
		if err := w.StartTradeConsumer(ctx, tradeConsumer); err != nil {
			zap.S().Errorf("trade consumer stopped with err: %v", err)
		}
	}()
	go func() {
		if err := w.StartOrderEventConsumer(ctx, eventConsumer); err != nil {
			zap.S().Errorf("order event consumer stopped with err: %v", err)
		}
	}()

	select {}
}
