package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	YouChat YouChatConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"600s"`
	// RequestTimeout bounds a whole search, stream included.
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"600s"`
}

type YouChatConfig struct {
	BaseURL    string `envconfig:"YOUCHAT_BASE_URL" default:"https://you.com/api/streamingSearch"`
	Model      string `envconfig:"YOUCHAT_MODEL" default:"gpt_4o"`
	ChatMode   string `envconfig:"YOUCHAT_CHAT_MODE" default:"default"`
	SafeSearch string `envconfig:"YOUCHAT_SAFE_SEARCH" default:"Moderate"`
	Market     string `envconfig:"YOUCHAT_MARKET" default:"en-IN"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
