package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Offers   OffersConfig   `yaml:"offers"`
	Checkout CheckoutConfig `yaml:"checkout"`
	Advice   AdviceConfig   `yaml:"advice"`
	Log      LogConfig      `yaml:"log"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"     env:"HTTP_ADDRESS"     env-default:":8080" validate:"required"`
	SwaggerDir string `yaml:"swagger_dir" env:"HTTP_SWAGGER_DIR" env-default:"api/swagger"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"GRPC_ADDRESS" env-default:":9090" validate:"required"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"     env:"DB_HOST"     env-default:"localhost"`
	Port     int    `yaml:"port"     env:"DB_PORT"     env-default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user"     env:"DB_USER"     env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	Name     string `yaml:"name"     env:"DB_NAME"     env-default:"spacify"`
	SSLMode  string `yaml:"ssl_mode" env:"DB_SSLMODE"  env-default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0" validate:"min=0"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"             env:"KAFKA_BROKERS"             env-separator:","`
	BookingTopic       string   `yaml:"booking_topic"       env:"KAFKA_BOOKING_TOPIC"       env-default:"spacify.bookings"`
	NotificationsTopic string   `yaml:"notifications_topic" env:"KAFKA_NOTIFICATIONS_TOPIC" env-default:"spacify.notifications"`
	GroupID            string   `yaml:"group_id"            env:"KAFKA_GROUP_ID"            env-default:"spacify-worker"`
}

// OffersConfig selects where the catalog comes from: "static" serves the
// built-in listing, "postgres" reads the offers table.
//
// Durations here and in CheckoutConfig must be positive. A zero value reads
// as unset and gets the default.
type OffersConfig struct {
	Source   string        `yaml:"source"    env:"OFFERS_SOURCE"    env-default:"static" validate:"oneof=static postgres"`
	CacheTTL time.Duration `yaml:"cache_ttl" env:"OFFERS_CACHE_TTL" env-default:"60s"    validate:"gt=0"`
}

type CheckoutConfig struct {
	SettlementDelay time.Duration `yaml:"settlement_delay" env:"CHECKOUT_SETTLEMENT_DELAY" env-default:"3s"   validate:"gt=0"`
	DisplayDelay    time.Duration `yaml:"display_delay"    env:"CHECKOUT_DISPLAY_DELAY"    env-default:"2s"   validate:"gt=0"`
	TaxRate         string        `yaml:"tax_rate"         env:"CHECKOUT_TAX_RATE"         env-default:"0.18" validate:"numeric"`
}

type AdviceConfig struct {
	APIKey      string        `yaml:"api_key"     env:"ADVICE_API_KEY"`
	Model       string        `yaml:"model"       env:"ADVICE_MODEL"       env-default:"gemini-2.5-flash" validate:"required"`
	Temperature float32       `yaml:"temperature" env:"ADVICE_TEMPERATURE" env-default:"0.7"              validate:"gte=0,lte=2"`
	Timeout     time.Duration `yaml:"timeout"     env:"ADVICE_TIMEOUT"     env-default:"20s"              validate:"gt=0"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

type WorkerConfig struct {
	NotifyEmail string `yaml:"notify_email" env:"WORKER_NOTIFY_EMAIL" env-default:"trader@spacify.in" validate:"email"`
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, then validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a config from environment variables and defaults only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func finalize(cfg *Config) error {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("failed to read env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
