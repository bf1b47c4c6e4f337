package core

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var errMissingSetting = "%s environment variable is required"

type (
	Config struct {
		AppName              string
		Env                  string
		Debug                bool
		Build                string
		SecretKey            string
		DatabaseURL          string
		DefaultAdminUsername string
		FrontendOrigin       string
		RollbarToken         string
		JWTExpirationDelta   time.Duration
		LoginRateLimit       float64
		Server               struct {
			Addr            string
			Host            string
			DebugHost       string
			ShutdownTimeout time.Duration
		}
	}
)

func (conf *Config) IsProduction() bool {
	return conf.Env == EnvProduction
}

// NewConfig reads the app settings from the environment, optionally seeded by a `.env` file.
func NewConfig() (*Config, error) {
	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.Wrap(err, "loading .env")
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "checking .env")
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("APP_NAME", "Institute Management System")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("BUILD", "develop")
	v.SetDefault("DEFAULT_ADMIN_USERNAME", "admin")
	v.SetDefault("FRONTEND_ORIGIN", "http://localhost:8000")
	v.SetDefault("JWT_EXPIRATION_HOURS", 24)
	v.SetDefault("LOGIN_RATE_LIMIT", 10.0)
	v.SetDefault("ADDR", ":5000")
	v.SetDefault("DEBUG_HOST", "localhost:4000")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	// keys without a default are only picked up by AutomaticEnv once bound
	for _, key := range []string{"SECRET_KEY", "DATABASE_URL", "ROLLBAR_TOKEN", "HOST"} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:              v.GetString("APP_NAME"),
		Env:                  strings.ToLower(v.GetString("APP_ENV")),
		Build:                v.GetString("BUILD"),
		SecretKey:            v.GetString("SECRET_KEY"),
		DatabaseURL:          v.GetString("DATABASE_URL"),
		DefaultAdminUsername: CleanString(v.GetString("DEFAULT_ADMIN_USERNAME")),
		FrontendOrigin:       v.GetString("FRONTEND_ORIGIN"),
		RollbarToken:         v.GetString("ROLLBAR_TOKEN"),
		JWTExpirationDelta:   time.Duration(v.GetInt("JWT_EXPIRATION_HOURS")) * time.Hour,
		LoginRateLimit:       v.GetFloat64("LOGIN_RATE_LIMIT"),
	}
	conf.Debug = !conf.IsProduction()
	conf.Server.Addr = v.GetString("ADDR")
	conf.Server.Host = v.GetString("HOST")
	conf.Server.DebugHost = v.GetString("DEBUG_HOST")
	conf.Server.ShutdownTimeout = v.GetDuration("SHUTDOWN_TIMEOUT")

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (conf *Config) validate() error {
	switch {
	case conf.SecretKey == "":
		return errors.Errorf(errMissingSetting, "SECRET_KEY")
	case conf.DatabaseURL == "":
		return errors.Errorf(errMissingSetting, "DATABASE_URL")
	case conf.Env != EnvDevelopment && conf.Env != EnvProduction:
		return errors.Errorf("APP_ENV must be %q or %q (got %q)", EnvDevelopment, EnvProduction, conf.Env)
	case conf.JWTExpirationDelta <= 0:
		return errors.New("JWT_EXPIRATION_HOURS must be positive")
	case conf.DefaultAdminUsername == "":
		return errors.Errorf(errMissingSetting, "DEFAULT_ADMIN_USERNAME")
	}
	return nil
}
