package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
}

type HTTP struct {
	Port         int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"20s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"20s"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers                []string `env:"KAFKA_BROKERS" envDefault:""`
	ConsumerID             string   `env:"KAFKA_CONSUMER_ID" envDefault:"inventory"`
	DeviceEventsTopic      string   `env:"KAFKA_DEVICE_EVENTS_TOPIC" envDefault:"inventory.devices"`
	DeviceAssignmentsTopic string   `env:"KAFKA_DEVICE_ASSIGNMENTS_TOPIC" envDefault:"inventory.device-assignments"`
}

// Enabled reports whether at least one broker address is configured.
func (k Kafka) Enabled() bool {
	for _, b := range k.Brokers {
		if b != "" {
			return true
		}
	}

	return false
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
