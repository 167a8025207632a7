package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	// keep a developer's .env out of the picture
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("Expected Port '8080', got '%s'", cfg.Port)
		}
		if cfg.DBPath != "mealweek.db" {
			t.Errorf("Expected DBPath 'mealweek.db', got '%s'", cfg.DBPath)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
		}
		if cfg.Location == nil || cfg.Location.String() != "Europe/Berlin" {
			t.Errorf("Expected Europe/Berlin location, got %v", cfg.Location)
		}
	})

	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("MEALWEEK_PORT", "9090")
		t.Setenv("MEALWEEK_DB_PATH", "/tmp/week.db")
		t.Setenv("MEALWEEK_TZ", "UTC")
		t.Setenv("MEALWEEK_LOG_LEVEL", "debug")
		t.Setenv("MEALWEEK_LOG_PRETTY", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("Expected Port '9090', got '%s'", cfg.Port)
		}
		if cfg.DBPath != "/tmp/week.db" {
			t.Errorf("Expected DBPath '/tmp/week.db', got '%s'", cfg.DBPath)
		}
		if cfg.Location.String() != "UTC" {
			t.Errorf("Expected UTC, got %v", cfg.Location)
		}
		if cfg.LogLevel != "debug" || !cfg.LogPretty {
			t.Errorf("Expected debug/pretty, got %s/%v", cfg.LogLevel, cfg.LogPretty)
		}
	})

	t.Run("InvalidPort", func(t *testing.T) {
		t.Setenv("MEALWEEK_PORT", "http")

		_, err := Load()
		if err == nil {
			t.Fatal("Expected an error for a non-numeric port, got nil")
		}
		if !strings.Contains(err.Error(), "validate config") {
			t.Errorf("Expected validation error, got '%v'", err)
		}
	})

	t.Run("InvalidTimezone", func(t *testing.T) {
		t.Setenv("MEALWEEK_TZ", "Mars/Olympus")

		_, err := Load()
		if err == nil {
			t.Fatal("Expected an error for an unknown timezone, got nil")
		}
		if !strings.Contains(err.Error(), "Mars/Olympus") {
			t.Errorf("Expected error to name the timezone, got '%v'", err)
		}
	})
}
