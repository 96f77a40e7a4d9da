package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"shippinglabel/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort            = "8080"
	defaultSessionIdleTimeout  = 30 * time.Minute
	defaultSessionReapSchedule = "0 * * * * *"
)

type Config struct {
	Env                 string
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	LogLevel            string
	SessionIdleTimeout  time.Duration
	SessionReapSchedule string
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing envFile is not an error; variables already set
// in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	idle, err := durationVariable("SESSION_IDLE_TIMEOUT", defaultSessionIdleTimeout)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Env:                 variable("APP_ENV", "local"),
		HTTPPort:            variable("HTTP_PORT", defaultHTTPPort),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              variable("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           variable("DB_SSLMODE", "disable"),
		LogLevel:            variable("LOG_LEVEL", "info"),
		SessionIdleTimeout:  idle,
		SessionReapSchedule: variable("SESSION_REAP_SCHEDULE", defaultSessionReapSchedule),
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate reports every missing database setting.
func (c Config) Validate() error {
	return errors.Join(
		required("DB_HOST", c.DBHost),
		required("DB_USER", c.DBUser),
		required("DB_NAME", c.DBName),
	)
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func variable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%s is not greater than 0", d))
	}
	return d, nil
}

func required(key, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(key)
	}
	return nil
}
