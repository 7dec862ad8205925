package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress           string        `env:"RUN_ADDRESS"`
	DatabaseDSN          string        `env:"DATABASE_URI"`
	MigrationsDir        string        `env:"MIGRATIONS_DIR"`
	RedisURL             string        `env:"REDIS_URL"`
	PricingAPIURL        string        `env:"PRICING_API_URL"`
	PricingAppID         string        `env:"PRICING_APP_ID"`
	PricingCurrency      string        `env:"PRICING_CURRENCY"`
	JWTUserSecret        string        `env:"JWT_USER_SECRET"`
	PriceRefreshInterval time.Duration `env:"PRICE_REFRESH_INTERVAL"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.PricingAPIURL == "" {
		return nil, errors.New("pricing API URL is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.RedisURL, "r", "localhost:6379", "Redis URL (redis:// or host:port)")
	flag.StringVar(&flagConfig.PricingAPIURL, "p", "", "Pricing API base URL")
	flag.StringVar(&flagConfig.PricingAppID, "app-id", "730", "Pricing API app_id param")
	flag.StringVar(&flagConfig.PricingCurrency, "currency", "EUR", "Pricing API currency param")
	flag.StringVar(&flagConfig.JWTUserSecret, "jwt-secret", "", "JWT secret key")
	flag.DurationVar(&flagConfig.PriceRefreshInterval, "refresh", 0, "Background price refresh interval, 0 disables")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	refreshInterval := envConfig.PriceRefreshInterval
	if refreshInterval == 0 {
		refreshInterval = flagsConfig.PriceRefreshInterval
	}
	return &Config{
		RunAddress:           defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:          defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:        defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		RedisURL:             defaultIfBlank(envConfig.RedisURL, flagsConfig.RedisURL),
		PricingAPIURL:        defaultIfBlank(envConfig.PricingAPIURL, flagsConfig.PricingAPIURL),
		PricingAppID:         defaultIfBlank(envConfig.PricingAppID, flagsConfig.PricingAppID),
		PricingCurrency:      defaultIfBlank(envConfig.PricingCurrency, flagsConfig.PricingCurrency),
		JWTUserSecret:        defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		PriceRefreshInterval: refreshInterval,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
