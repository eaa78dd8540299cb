package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is read once at startup and handed to constructors. Nothing in the
// service looks at the environment after Load returns.
type Config struct {
	ServiceName string `env:"SERVICE_NAME,default=node-backend"`
	Port        string `env:"PORT,default=3000"`
	GinMode     string `env:"GIN_MODE,default=release"`

	DBDriver    string `env:"DB_DRIVER,default=mysql"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=168h"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS,default=*"`

	RateLimitRPS        float64 `env:"RATE_LIMIT_RPS,default=50"`
	RateLimitBurst      int     `env:"RATE_LIMIT_BURST,default=100"`
	AuthRateLimitPerMin int     `env:"AUTH_RATE_LIMIT_PER_MINUTE,default=20"`

	StrictOrderTransitions bool `env:"ORDER_STRICT_TRANSITIONS,default=false"`

	SeedOnStart   bool `env:"SEED_ON_START,default=false"`
	SeedTestUsers bool `env:"SEED_TEST_USERS,default=false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	KafkaBrokers    []string `env:"KAFKA_BROKERS"`
	KafkaOrderTopic string   `env:"KAFKA_ORDER_TOPIC,default=order-events"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads an optional .env file and decodes the environment into a Config.
// DATABASE_URL and JWT_SECRET are mandatory.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that envdecode cannot express as tags.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unsupported GIN_MODE %q", c.GinMode)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 || c.AuthRateLimitPerMin <= 0 {
		return fmt.Errorf("config: rate limits must be positive")
	}
	return nil
}

// KafkaEnabled reports whether order events should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaOrderTopic != ""
}
