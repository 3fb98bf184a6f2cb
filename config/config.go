package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8001"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sevenmenu.db"`
	JWTSecret   string `env:"SECRET_KEY" envDefault:"seven-menu-secret-key-2024-super-secure"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"https://app.sevenmenu.com.br"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// Missing .env is fine; containers set real env vars.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Secret returns the JWT signing key as bytes.
func (c *Config) Secret() []byte {
	return []byte(c.JWTSecret)
}
