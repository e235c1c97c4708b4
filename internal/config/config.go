package config

import "github.com/kelseyhightower/envconfig"

// Config holds everything read from the environment. Defaults match the
// docker-compose development setup.
type Config struct {
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"host=localhost user=user password=password dbname=meetgodb port=5432 sslmode=disable"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6380"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-only-secret"`

	// Optional ops bot. Notifications are disabled when the token is empty.
	TelegramToken     string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramOpsChatID int64  `envconfig:"TELEGRAM_OPS_CHAT_ID"`

	// Comma-separated blacklist for the chat censor.
	CensoredWords []string `envconfig:"CENSORED_WORDS"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
