package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreSQL       = "sql"

	AuthFirebase = "firebase"
	AuthJWT      = "jwt"

	defaultJWTSecret = "change-me-jwt-secret"
)

type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	CORSOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	StaticDir      string        `env:"STATIC_DIR"`

	Store    Store
	Firebase Firebase
	Auth     Auth
}

type Store struct {
	Driver      string `env:"STORE_DRIVER" envDefault:"firestore"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"events.db"`
}

type Firebase struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

type Auth struct {
	Provider  string        `env:"AUTH_PROVIDER" envDefault:"firebase"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me-jwt-secret"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// MailSecrets are parsed on every send, not at startup.
type MailSecrets struct {
	APIKey string `env:"SG_API_KEY"`
	From   string `env:"SG_FROM_EMAIL"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("env.Parse: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.Auth.Provider = strings.ToLower(strings.TrimSpace(cfg.Auth.Provider))
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadMailSecrets() (MailSecrets, error) {
	var s MailSecrets
	if err := env.Parse(&s); err != nil {
		return MailSecrets{}, fmt.Errorf("env.Parse: %w", err)
	}
	s.APIKey = strings.TrimSpace(s.APIKey)
	s.From = strings.TrimSpace(s.From)
	return s, nil
}

func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be > 0")
	}

	switch cfg.Store.Driver {
	case StoreFirestore:
		if isProdLike(cfg.AppEnv) && cfg.Firebase.ProjectID == "" {
			return fmt.Errorf("in prod/release FIREBASE_PROJECT_ID must be set")
		}
	case StoreSQL:
		if strings.TrimSpace(cfg.Store.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL must not be empty when STORE_DRIVER=sql")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: firestore, sql")
	}

	switch cfg.Auth.Provider {
	case AuthFirebase:
	case AuthJWT:
		if cfg.Auth.JWTTTL <= 0 {
			return fmt.Errorf("JWT_TTL must be > 0")
		}
		if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.Auth.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	default:
		return fmt.Errorf("AUTH_PROVIDER must be one of: firebase, jwt")
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
