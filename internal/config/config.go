package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address       string        `env:"RUN_ADDRESS"     envDefault:"localhost:8080"`
	BankName      string        `env:"BANK_NAME"       envDefault:"Bank of Money"`
	LogLvl        string        `env:"LOG_LVL"         envDefault:"info"`
	TokenSecret   string        `env:"TOKEN_SECRET"    envDefault:"change-me"`
	TokenTTL      time.Duration `env:"TOKEN_TTL"       envDefault:"15m"`
	BcryptCost    int           `env:"BCRYPT_COST"     envDefault:"10"`
	IDMaxAttempts int           `env:"ID_MAX_ATTEMPTS" envDefault:"10000"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.BankName, "n", cfg.BankName, "institution name")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.TokenSecret, "s", cfg.TokenSecret, "token signing secret")
	flag.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "session token lifetime")
	flag.IntVar(&cfg.BcryptCost, "c", cfg.BcryptCost, "bcrypt cost for PIN hashing")
	flag.IntVar(&cfg.IDMaxAttempts, "r", cfg.IDMaxAttempts, "max draws when allocating an id")
	flag.Parse()

	return cfg
}
