package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           int           `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN        string        `env:"POSTGRES_DSN"`
	PostgresMaxConns   int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret          string        `env:"JWT_SECRET"`
	JobExpiryInterval  time.Duration `env:"JOB_EXPIRY_INTERVAL" envDefault:"24h"`
	ExpiryNoticeWindow time.Duration `env:"EXPIRY_NOTICE_WINDOW" envDefault:"720h"`
	Storage            Storage
	Redis              Redis
	Kafka              Kafka
}

type Storage struct {
	URL           string        `env:"STORAGE_URL"`
	ServiceKey    string        `env:"STORAGE_SERVICE_KEY"`
	Bucket        string        `env:"STORAGE_BUCKET" envDefault:"personnel-photos"`
	Timeout       time.Duration `env:"STORAGE_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"STORAGE_RETRY_ATTEMPTS" envDefault:"3"`
}

type Redis struct {
	Addr            string        `env:"REDIS_ADDR"`
	UploadRateLimit int           `env:"UPLOAD_RATE_LIMIT" envDefault:"30"`
	UploadWindow    time.Duration `env:"UPLOAD_RATE_WINDOW" envDefault:"1m"`
}

type Kafka struct {
	Brokers                []string `env:"KAFKA_BROKERS" envSeparator:","`
	ConsumerID             string   `env:"KAFKA_CONSUMER_ID"`
	WorkflowEventsTopic    string   `env:"KAFKA_WORKFLOW_EVENTS_TOPIC" envDefault:"certification.workflow"`
	TrainingCompletedTopic string   `env:"KAFKA_TRAINING_COMPLETED_TOPIC" envDefault:"certification.training_completed"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
