package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")
	os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}

	if cfg.DBConnectTimeout != 10 {
		t.Errorf("expected default connect timeout 10, got %d", cfg.DBConnectTimeout)
	}

	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected open CORS by default, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_MissingStoreIsNotFatal(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HasStore() {
		t.Error("expected HasStore() to be false without DATABASE_URL")
	}
}

func TestLoad_WithStore(t *testing.T) {
	os.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	os.Setenv("DATABASE_NAME", "medassist_test")
	defer os.Unsetenv("DATABASE_URL")
	defer os.Unsetenv("DATABASE_NAME")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("expected DATABASE_URL to be set, got %s", cfg.DatabaseURL)
	}

	if cfg.DatabaseName != "medassist_test" {
		t.Errorf("expected DATABASE_NAME to be set, got %s", cfg.DatabaseName)
	}

	if !cfg.HasStore() {
		t.Error("expected HasStore() to be true")
	}
}

func TestHasStore_RequiresBothSettings(t *testing.T) {
	c := &Config{DatabaseURL: "mongodb://localhost:27017"}
	if c.HasStore() {
		t.Error("expected HasStore() to be false without DATABASE_NAME")
	}

	c = &Config{DatabaseName: "medassist"}
	if c.HasStore() {
		t.Error("expected HasStore() to be false without DATABASE_URL")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := &Config{Port: "8000", RateLimitRPS: 100, RateLimitBurst: 200, DBConnectTimeout: 10}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error for valid config: %v", err)
	}

	cases := []struct {
		name string
		cfg  *Config
	}{
		{"empty port", &Config{Port: "", RateLimitRPS: 100, RateLimitBurst: 200, DBConnectTimeout: 10}},
		{"negative rps", &Config{Port: "8000", RateLimitRPS: -1, RateLimitBurst: 200, DBConnectTimeout: 10}},
		{"negative burst", &Config{Port: "8000", RateLimitRPS: 100, RateLimitBurst: -1, DBConnectTimeout: 10}},
		{"zero timeout", &Config{Port: "8000", RateLimitRPS: 100, RateLimitBurst: 200, DBConnectTimeout: 0}},
	}

	for _, tc := range cases {
		if err := tc.cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
