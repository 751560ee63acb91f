package config

type Storage struct {
	TokenFile  string `env:"TOKEN_FILE" envDefault:"token.txt" validate:"required"`
	ItemsFile  string `env:"ITEMS_FILE" envDefault:"items.txt" validate:"required"`
	TradesFile string `env:"TRADES_FILE" envDefault:"trades.txt" validate:"required"`
}
