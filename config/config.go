package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "MEALWEEK_"

type AppConfig struct {
	Port      string `koanf:"port" validate:"required,numeric"`
	Timezone  string `koanf:"tz" validate:"required"`
	DBPath    string `koanf:"db_path" validate:"required"`
	LogLevel  string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	LogPretty bool   `koanf:"log_pretty"`

	Location *time.Location `koanf:"-"`
}

func defaults() AppConfig {
	return AppConfig{
		Port:     "8080",
		Timezone: "Europe/Berlin",
		DBPath:   "mealweek.db",
		LogLevel: "info",
	}
}

// Load reads an optional .env file and the MEALWEEK_* environment variables.
func Load() (AppConfig, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return AppConfig{}, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return AppConfig{}, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc
	return cfg, nil
}
