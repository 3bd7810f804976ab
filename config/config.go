package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const devSessionSecret = "kurevin-art-dev-session-key"

type Config struct {
	Env  string `env:"APP_ENV" envDefault:"production"`
	Port string `env:"PORT" envDefault:"5001"`

	DBURL string `env:"DB_URL" envDefault:"sqlite://kurevin.db"`

	SessionSecret string `env:"SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CORSOrigin    string `env:"CORS_ORIGIN"`

	UploadDir   string `env:"UPLOAD_DIR" envDefault:"static/images/paintings"`
	MaxUploadMB int64  `env:"MAX_UPLOAD_MB" envDefault:"32"`

	ContactEmail    string `env:"CONTACT_EMAIL" envDefault:"kurevin.art@gmail.com"`
	ContactPhone    string `env:"CONTACT_PHONE" envDefault:"+380501234567"`
	ContactTelegram string `env:"CONTACT_TELEGRAM" envDefault:"kurevin_art"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"kurevin2026"`
}

// LoadDotEnv loads .env.local then .env. godotenv never overrides variables
// already present in the environment, so OS values win.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range []string{".env.local", ".env"} {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment is true only when APP_ENV names development explicitly.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// MaxUploadBytes is the hard request-body limit for painting forms.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func (c *Config) validate() error {
	if c.MaxUploadMB <= 0 {
		return errors.New("MAX_UPLOAD_MB must be positive")
	}
	if c.SessionSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("SESSION_SECRET is required outside development")
		}
		c.SessionSecret = devSessionSecret
	}
	if c.AdminUsername == "" {
		return errors.New("ADMIN_USERNAME must not be empty")
	}
	return nil
}

// UsesDevSecret reports whether the built-in development session key is active.
func (c *Config) UsesDevSecret() bool {
	return c.SessionSecret == devSessionSecret
}
