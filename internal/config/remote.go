package config

type Remote struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://catbud.net" validate:"required,url"`

	// ScanRadius is the range-query radius around a notify position.
	ScanRadius float64 `env:"SCAN_RADIUS" envDefault:"1.25" validate:"gt=0"`
}
