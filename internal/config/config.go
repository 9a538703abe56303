package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App     App     `yaml:"app"`
	HTTP    HTTP    `yaml:"http"`
	Log     Log     `yaml:"log"`
	Amadeus Amadeus `yaml:"amadeus"`
}

type App struct {
	Name    string `yaml:"name" env:"APP_NAME" env-default:"travel-data-api"`
	Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
}

type HTTP struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Amadeus holds the upstream provider credentials and endpoint URLs.
// ClientID and ClientSecret have no defaults on purpose.
type Amadeus struct {
	ClientID        string `yaml:"client_id" env:"AMADEUS_CLIENT_ID"`
	ClientSecret    string `yaml:"client_secret" env:"AMADEUS_CLIENT_SECRET"`
	TokenURL        string `yaml:"token_url" env:"AMADEUS_TOKEN_URL" env-default:"https://test.api.amadeus.com/v1/security/oauth2/token"`
	FlightOffersURL string `yaml:"flight_offers_url" env:"AMADEUS_FLIGHT_OFFERS_URL" env-default:"https://test.api.amadeus.com/v2/shopping/flight-offers"`
}

func New() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		// fallback to env vars only when the file is absent; a file that
		// exists but does not parse is a real error
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config error: %w", err)
		}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
		return cfg, nil
	}

	// Allow env vars to override config file
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}
