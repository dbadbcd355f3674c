package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Bet      BetConfig
	Worker   WorkerConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"bets"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// BetConfig bounds a single stake and the optimistic-concurrency retry
// budget for ledger mutations.
type BetConfig struct {
	MinStake   string `env:"BET_MIN_STAKE" envDefault:"1.00"`
	MaxStake   string `env:"BET_MAX_STAKE" envDefault:"10000.00"`
	MaxRetries int    `env:"BET_MAX_RETRIES" envDefault:"3"`
}
type WorkerConfig struct {
	ReconcileInterval time.Duration `env:"WORKER_RECONCILE_INTERVAL" envDefault:"3m"`
	ReconcileBatch    int           `env:"WORKER_RECONCILE_BATCH" envDefault:"100"`
}

// KafkaConfig enables bet-lifecycle event publishing when Brokers is set.
type KafkaConfig struct {
	Brokers string `env:"KAFKA_BROKERS" envDefault:""`
	Topic   string `env:"KAFKA_BET_EVENTS_TOPIC" envDefault:"bet_events"`
}

// RedisConfig enables the odds-snapshot cache when Addr is set.
type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR" envDefault:""`
	OddsTTL time.Duration `env:"REDIS_ODDS_TTL" envDefault:"5s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
