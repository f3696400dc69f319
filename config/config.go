package config

import (
	"os"

	postgres_wrapper "github.com/joripage/stock-exchange/pkg/infra/postgres"
	redis_wrapper "github.com/joripage/stock-exchange/pkg/infra/redis"
	"github.com/joripage/stock-exchange/pkg/marketdata"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type KafkaConfig struct {
	Brokers         []string `yaml:"brokers"`
	TradeTopic      string   `yaml:"trade_topic"`
	OrderEventTopic string   `yaml:"order_event_topic"`
	WorkerGroupID   string   `yaml:"worker_group_id"`
}

type FixConfig struct {
	ConfigFilepath string `yaml:"config_filepath"`
}

type AppConfig struct {
	ServiceName string                           `yaml:"service_name"`
	LedgerDB    *postgres_wrapper.PostgresConfig `yaml:"ledger_db"`
	Redis       *redis_wrapper.RedisConfig       `yaml:"redis"`
	Kafka       *KafkaConfig                     `yaml:"kafka"`
	Fix         *FixConfig                       `yaml:"fix"`
	MarketData  *marketdata.Config               `yaml:"market_data"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
