package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr         string   `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL      string   `envconfig:"DATABASE_URL" required:"true"`
	InternalToken    string   `envconfig:"INTERNAL_TOKEN" required:"true"`
	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	CurrencyLabel    string   `envconfig:"CURRENCY_LABEL" default:"SAR"`

	// Optional letterhead assets; missing files just render without them.
	LogoPath      string `envconfig:"LOGO_PATH"`
	SignaturePath string `envconfig:"SIGNATURE_PATH"`

	SignerName  string `envconfig:"SIGNER_NAME"`
	SignerTitle string `envconfig:"SIGNER_TITLE"`
}

func MustLoad() Config {
	// Missing .env files are fine; configuration may come straight from the
	// environment.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}
