package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the bot reads from the environment.
type Config struct {
	BotName    string `env:"BOT_NAME" envDefault:"godris"`
	Prefix     string `env:"BOT_PREFIX" envDefault:"!"`
	RestURL    string `env:"ELUDRIS_REST_URL" envDefault:"https://eludris.tooty.xyz/"`
	GatewayURL string `env:"ELUDRIS_GATEWAY_URL" envDefault:"wss://eludris.tooty.xyz/ws/"`
}

// New loads .env when present and parses the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("[ERR] Failed to parse environment: ", err)
	}
	return cfg
}
