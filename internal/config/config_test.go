package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"API_BASE_URL", "HTTP_TIMEOUT", "LOCALE", "IMAGE_BASE", "LOG_FILE", "METRICS_ADDR"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != DefaultAPIBase {
		t.Errorf("APIBase = %q, want %q", cfg.APIBase, DefaultAPIBase)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Locale != DefaultLocale || cfg.ImageBase != DefaultImageBase || cfg.LogFile != DefaultLogFile {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Print || cfg.MetricsAddr != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "http://env.example/api/")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOCALE", "es-CO")

	cfg, err := Load([]string{"--timeout", "1500ms", "--print", "-q", "ama"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBase != "http://env.example/api" {
		t.Errorf("APIBase = %q, trailing slash should be trimmed", cfg.APIBase)
	}
	if cfg.Timeout != 1500*time.Millisecond {
		t.Errorf("flag should override env timeout, got %v", cfg.Timeout)
	}
	if cfg.Locale != "es-CO" {
		t.Errorf("Locale = %q", cfg.Locale)
	}
	if !cfg.Print || cfg.Query != "ama" {
		t.Errorf("Print/Query = %v/%q", cfg.Print, cfg.Query)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "bad env timeout", env: map[string]string{"HTTP_TIMEOUT": "soon"}},
		{name: "relative api", args: []string{"--api", "/api/v1"}},
		{name: "ftp api", args: []string{"--api", "ftp://example.com"}},
		{name: "zero timeout", args: []string{"--timeout", "0s"}},
		{name: "query without print", args: []string{"--query", "x"}},
		{name: "unknown flag", args: []string{"--nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	clearEnv(t)
	_, err := Load([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("expected pflag.ErrHelp, got %v", err)
	}
}
