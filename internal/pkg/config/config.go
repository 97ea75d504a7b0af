package config

import (
	"fmt"
	"time"

	"collective-lifecycle/internal/domain/collective"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, product windows)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Lifecycle LifecycleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	RunMigrations bool   `envconfig:"DB_RUN_MIGRATIONS" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Provider-Id,X-Api-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password       string        `envconfig:"REDIS_PASSWORD" default:""`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	IdempotencyTTL time.Duration `envconfig:"REDIS_IDEMPOTENCY_TTL" default:"24h"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"collective-lifecycle"`
	PublishTick  time.Duration `envconfig:"KAFKA_PUBLISH_TICK" default:"1s"`
	PublishBatch int           `envconfig:"KAFKA_PUBLISH_BATCH" default:"100"`
	PublisherOff bool          `envconfig:"KAFKA_PUBLISHER_DISABLED" default:"false"`
}

// LifecycleConfig carries the product windows of the lifecycle engine.
type LifecycleConfig struct {
	NewStatuses        bool          `envconfig:"LIFECYCLE_NEW_STATUSES" default:"true"`
	CancellationGrace  time.Duration `envconfig:"LIFECYCLE_CANCELLATION_GRACE" default:"360h"`
	CancellationCutoff time.Duration `envconfig:"LIFECYCLE_CANCELLATION_CUTOFF" default:"360h"`
	EndedActionsWindow time.Duration `envconfig:"LIFECYCLE_ENDED_ACTIONS_WINDOW" default:"48h"`
	ConfirmationWindow time.Duration `envconfig:"LIFECYCLE_BOOKING_CONFIRMATION_WINDOW" default:"720h"`
	ExpirationBatch    int           `envconfig:"LIFECYCLE_EXPIRATION_BATCH" default:"100"`
	// ExpirationTick of zero leaves expiration to the offerstatus CLI.
	ExpirationTick time.Duration `envconfig:"LIFECYCLE_EXPIRATION_TICK" default:"0"`
}

func (l LifecycleConfig) Settings() collective.Settings {
	return collective.Settings{
		NewStatuses:        l.NewStatuses,
		CancellationGrace:  l.CancellationGrace,
		CancellationCutoff: l.CancellationCutoff,
		EndedActionsWindow: l.EndedActionsWindow,
	}
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadJobConfig reads only what offline jobs need, so they run without the server settings.
func LoadJobConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg.DB); err != nil {
		return Config{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Lifecycle); err != nil {
		return Config{}, fmt.Errorf("failed to process lifecycle env config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Log); err != nil {
		return Config{}, fmt.Errorf("failed to process log env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			IdempotencyTTL: time.Hour,
		},
		Kafka: KafkaConfig{
			Topic:        "collective-lifecycle-test",
			PublishTick:  time.Second,
			PublishBatch: 10,
			PublisherOff: true,
		},
		Lifecycle: LifecycleConfig{
			NewStatuses:        true,
			CancellationGrace:  15 * 24 * time.Hour,
			CancellationCutoff: 15 * 24 * time.Hour,
			EndedActionsWindow: 48 * time.Hour,
			ConfirmationWindow: 30 * 24 * time.Hour,
			ExpirationBatch:    10,
		},
	}
}
