package config

import "time"

type Gateway struct {
	URL string `env:"GATEWAY_URL" envDefault:"wss://catbud.net/api/gateway" validate:"required"`

	// ReconnectDelay is applied after every disconnect, clean or not.
	// Fixed, never exponential.
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"10s" validate:"gt=0"`
}
