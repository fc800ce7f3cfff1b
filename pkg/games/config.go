package games

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the service runtime configuration, read from the
// environment with an optional .env file on top.
type Config struct {
	Addr      string `env:"SQUIDGAME_ADDR" envDefault:"localhost:8080"`
	DataDir   string `env:"SQUIDGAME_DATA_DIR" envDefault:"./binaries/badgerdb"`
	ListLimit int    `env:"SQUIDGAME_LIST_LIMIT" envDefault:"100"`
}

// LoadConfig loads a .env file when one exists, then parses the
// environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
