package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"development" validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Storage Storage `validate:"required"`

	// validated only when the postgres driver is selected
	Postgres Postgres `validate:"-"`

	Cache Cache `validate:"required"`

	Delivery Delivery `validate:"required"`

	Jobs Jobs `validate:"required"`
}

type Http struct {
	Host string `env:"HOST" envDefault:"localhost" validate:"required,hostname|ip"`
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
}

type Kafka struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"logistics-tracker" validate:"required_if=Enabled true"`
	Brokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:"," validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"shipment-requests" validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `env:"KAFKA_READER_MAX_WAIT" envDefault:"10ms" validate:"gte=0"`
	BatchTimeout  time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms" validate:"gte=0"`
}

const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Storage struct {
	Driver     string `env:"STORAGE_DRIVER" envDefault:"json" validate:"required,oneof=json postgres sqlite memory"`
	JSONDir    string `env:"STORAGE_JSON_DIR" envDefault:"./stores" validate:"required_if=Driver json"`
	SQLitePath string `env:"STORAGE_SQLITE_PATH" envDefault:"./stores/logistics.db" validate:"required_if=Driver sqlite"`
}

type Postgres struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost" validate:"required,hostname|ip"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432" validate:"required,gt=0,lte=65535"`
	DBName   string `env:"POSTGRES_DB" envDefault:"logistics" validate:"required"`
	User     string `env:"POSTGRES_USER" validate:"required"`
	Password string `env:"POSTGRES_PASSWORD" validate:"required"`

	SSLMode string `env:"POSTGRES_SSL_MODE" envDefault:"disable" validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25" validate:"gte=1"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"25" validate:"gte=0"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"5m" validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:"," validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `env:"CACHE_CAPACITY" envDefault:"1000" validate:"gte=1"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"10m" validate:"gt=0"`
}

type Delivery struct {
	Policy string `env:"DELIVERY_POLICY" envDefault:"exact" validate:"required,oneof=exact same_day on_or_after"`
}

type Jobs struct {
	// cron spec with a seconds field
	OverdueSchedule string `env:"JOBS_OVERDUE_SCHEDULE" envDefault:"0 */5 * * * *" validate:"required"`
}

func New() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Storage.Driver == DriverPostgres {
		return validate.Struct(c.Postgres)
	}
	return nil
}
