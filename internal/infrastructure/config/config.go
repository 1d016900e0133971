package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Mock    MockConfig
}

type SessionConfig struct {
	TokenTTL        time.Duration `env:"SESSION_TOKEN_TTL, default=24h"`
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL,  default=3s"`
}

// MockConfig tunes the simulated external collaborators (payment gateway and
// identity provider latency).
type MockConfig struct {
	PaymentDelay time.Duration `env:"PAYMENT_DELAY, default=2s"`
	LoginDelay   time.Duration `env:"LOGIN_DELAY,   default=800ms"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
