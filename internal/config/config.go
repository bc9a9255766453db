package config

import (
	"time"

	"github.com/caarlos0/env/v8"
)

// MediaConfig addresses the R2 bucket hosting store photos.
type MediaConfig struct {
	AccountID       string `env:"R2_ACCOUNT_ID"`
	AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	Bucket          string `env:"R2_BUCKET" envDefault:"tiendas-fotos"`
	Region          string `env:"R2_REGION" envDefault:"auto"`
	PublicBaseURL   string `env:"R2_PUBLIC_URL"`
	Folder          string `env:"R2_FOLDER" envDefault:"tiendas"`
	ImageTransform  string `env:"R2_IMAGE_TRANSFORM" envDefault:"width=800,height=600,fit=cover"`
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string        `env:"MONGO_DB" envDefault:"vitrina-local"`
	StoreCollection string        `env:"STORE_COLLECTION" envDefault:"tiendas"`
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"API_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Media           MediaConfig
}

// Load parses environment variables into a fully populated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
