package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Remote  Remote
	Gateway Gateway
	Storage Storage
	Ops     Ops
}

type Ops struct {
	// Empty address disables the corresponding server.
	ProbeAddress   string `env:"PROBE_ADDRESS"`
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}
