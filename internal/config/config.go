package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Payment   PaymentConfig   `yaml:"payment"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"hotelbooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig: пустой Addr отключает кэш номеров и распределённую блокировку,
// вместо неё используется блокировка в памяти процесса.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:""`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"   validate:"min=0"`
	RoomTTL  time.Duration `yaml:"room_ttl"  env:"REDIS_ROOM_TTL"  env-default:"1m"  validate:"gt=0"`
	LockTTL  time.Duration `yaml:"lock_ttl"  env:"REDIS_LOCK_TTL"  env-default:"10s" validate:"gt=0"`
	LockWait time.Duration `yaml:"lock_wait" env:"REDIS_LOCK_WAIT" env-default:"3s"  validate:"gt=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers  []string `yaml:"brokers"  env:"KAFKA_BROKERS"  env-separator:","`
	Topic    string   `yaml:"topic"    env:"KAFKA_TOPIC"    env-default:"hotel.bookings"`
	Producer string   `yaml:"producer" env:"KAFKA_PRODUCER" env-default:"hotel-booker"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	AdminChatID int64  `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" validate:"required"`
}

type BookingConfig struct {
	TaxRate     float64 `yaml:"tax_rate"      env:"BOOKING_TAX_RATE"      env-default:"0.10" validate:"gte=0,lt=1"`
	MinGuestAge int     `yaml:"min_guest_age" env:"BOOKING_MIN_GUEST_AGE" env-default:"16"   validate:"min=0"`
}

// PaymentConfig: валюта общая для обоих рельсов, цены броней в ней же.
type PaymentConfig struct {
	Currency string         `yaml:"currency" env:"PAYMENT_CURRENCY" env-default:"usd" validate:"required"`
	QR       QRConfig       `yaml:"qr"`
	Checkout CheckoutConfig `yaml:"checkout"`
}

type QRConfig struct {
	DisplayTTL time.Duration `yaml:"display_ttl" env:"QR_DISPLAY_TTL" env-default:"15m"         validate:"gt=0"`
	Merchant   string        `yaml:"merchant"    env:"QR_MERCHANT"    env-default:"HotelBooker" validate:"required"`
}

// CheckoutConfig: без BaseURL или APIKey внешний checkout считается
// не настроенным, операции возвращают domain.ErrProviderNotConfigured.
type CheckoutConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"CHECKOUT_BASE_URL"       env-default:""`
	APIKey        string        `yaml:"api_key"        env:"CHECKOUT_API_KEY"        env-default:""`
	WebhookSecret string        `yaml:"webhook_secret" env:"CHECKOUT_WEBHOOK_SECRET" env-default:""`
	SuccessURL    string        `yaml:"success_url"    env:"CHECKOUT_SUCCESS_URL"    env-default:"http://localhost:3000/payments/success"`
	CancelURL     string        `yaml:"cancel_url"     env:"CHECKOUT_CANCEL_URL"     env-default:"http://localhost:3000/payments/cancel"`
	Timeout       time.Duration `yaml:"timeout"        env:"CHECKOUT_TIMEOUT"        env-default:"10s" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval      time.Duration `yaml:"interval"       env:"SCHEDULER_INTERVAL"       env-default:"1m" validate:"required,gt=0"`
	PaymentWindow time.Duration `yaml:"payment_window" env:"SCHEDULER_PAYMENT_WINDOW" env-default:"6h" validate:"required,gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
