package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitReturnsCachedConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte("app_name: catalog\nserver:\n  port: 8080\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	path = file

	first, err := Init()
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if first == nil || first.AppName != "catalog" {
		t.Fatalf("unexpected config: %+v", first)
	}

	second, err := Init()
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if second != first {
		t.Fatalf("second Init = %p, want cached %p", second, first)
	}
}

func TestReadConfig(t *testing.T) {
	v := viper.New()
	v.Set("app_name", "catalog")
	v.Set("run_mode", "release")
	v.Set("environment", "production")
	v.Set("server.protocol", "https")
	v.Set("server.domain", "api.example.com")
	v.Set("server.host", "0.0.0.0")
	v.Set("server.port", 8080)
	v.Set("logger.level", 4)
	v.Set("logger.format", "json")
	v.Set("logger.output", "stdout")

	cfg := readConfig(v)

	if cfg.AppName != "catalog" || cfg.RunMode != "release" {
		t.Fatalf("unexpected app config: %+v", cfg)
	}
	if cfg.Port != 8080 || cfg.Protocol != "https" {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.Logger == nil || cfg.Logger.Format != "json" || cfg.Logger.Level != 4 {
		t.Fatalf("unexpected logger config: %+v", cfg.Logger)
	}
	if cfg.Data == nil {
		t.Fatal("data config should always be populated")
	}
}

func TestGetLoggerConfigDefaults(t *testing.T) {
	cfg := getLoggerConfig(viper.New())
	if cfg.Level != 0 || cfg.Format != "" || cfg.Output != "" {
		t.Fatalf("expected zero-valued logger config, got %+v", cfg)
	}
}
