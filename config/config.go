package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// DevSessionSecret is the fallback signing secret for local development.
// Validate rejects it when APP_ENV is production.
const DevSessionSecret = "dev-secret-change-me"

type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	Auth    AuthConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SessionConfig struct {
	Secret     string
	Expiry     time.Duration
	CookieName string
}

type AuthConfig struct {
	// ProtectRecords gates patient/surgery mutations behind a valid session.
	ProtectRecords bool
}

type CORSConfig struct {
	Origin string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("SESSION_SECRET", DevSessionSecret)
	viper.SetDefault("SESSION_EXPIRY", "168h")
	viper.SetDefault("SESSION_COOKIE_NAME", "token")
	viper.SetDefault("AUTH_PROTECT_RECORDS", false)
	viper.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")

	// .env is optional; the process environment alone is enough.
	_ = viper.ReadInConfig()

	expiry, err := time.ParseDuration(viper.GetString("SESSION_EXPIRY"))
	if err != nil {
		expiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			Expiry:     expiry,
			CookieName: viper.GetString("SESSION_COOKIE_NAME"),
		},
		Auth: AuthConfig{
			ProtectRecords: viper.GetBool("AUTH_PROTECT_RECORDS"),
		},
		CORS: CORSConfig{
			Origin: viper.GetString("CLIENT_ORIGIN"),
		},
	}

	return config, nil
}

// Validate checks constraints that must hold before the server starts.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.App.Env == "production" && c.Session.Secret == DevSessionSecret {
		return errors.New("SESSION_SECRET must be set explicitly in production")
	}
	return nil
}
