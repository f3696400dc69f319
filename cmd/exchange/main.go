package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/joripage/stock-exchange/config"
	"github.com/joripage/stock-exchange/pkg/exchange"
	fixgateway "github.com/joripage/stock-exchange/pkg/exchange/fix"
	redis_wrapper "github.com/joripage/stock-exchange/pkg/infra/redis"
	"github.com/joripage/stock-exchange/pkg/kafkawrapper"
	"github.com/joripage/stock-exchange/pkg/logging"
	"github.com/joripage/stock-exchange/pkg/marketdata"
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

	go func() {
		_ = http.ListenAndServe("localhost:6060", nil)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	redisClient, err := redis_wrapper.InitRedis(cfg.Redis)
	if err != nil {
		zap.S().Errorf("init redis fail with err: %v", err)
		panic(err)
	}

	producer := kafkawrapper.NewProducer(kafkawrapper.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
	})
	defer producer.Close(ctx)

	mdCfg := cfg.MarketData
	if mdCfg == nil {
		mdCfg = &marketdata.Config{}
	}
	if mdCfg.TradeTopic == "" {
		mdCfg.TradeTopic = cfg.Kafka.TradeTopic
	}
	if mdCfg.OrderEventTopic == "" {
		mdCfg.OrderEventTopic = cfg.Kafka.OrderEventTopic
	}
	publisher := marketdata.NewPublisher(redisClient, producer, mdCfg)
	publisher.Start(ctx)

	fixGateway := fixgateway.NewFixGateway(&fixgateway.FixGatewayConfig{
		ConfigFilepath: cfg.Fix.ConfigFilepath,
	})
	ex := exchange.NewExchange(fixGateway, publisher, publisher)
	fixGateway.AddExchangeInstance(ex)
	if err := ex.Start(ctx); err != nil {
		zap.S().Errorf("start exchange fail with err: %v", err)
		panic(err)
	}
	fmt.Println("Exchange started. Press Ctrl+C to exit.")

	<-sigs
	fmt.Println("Shutting down...")

	ex.Stop()
	fixGateway.Stop()
	cancel()

	fmt.Println("Exited cleanly.")
}
