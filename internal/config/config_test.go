package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.DatabasePath != "./data/lunar.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "./data/lunar.db")
	}
	if cfg.GridCacheSize != 240 {
		t.Errorf("GridCacheSize = %d, want 240", cfg.GridCacheSize)
	}
	if cfg.RateLimitRPS != 20 {
		t.Errorf("RateLimitRPS = %g, want 20", cfg.RateLimitRPS)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("GRID_CACHE_SIZE", "12")
	os.Setenv("RATE_LIMIT_RPS", "0")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.GridCacheSize != 12 {
		t.Errorf("GridCacheSize = %d, want 12", cfg.GridCacheSize)
	}
	if cfg.RateLimitRPS != 0 {
		t.Errorf("RateLimitRPS = %g, want 0", cfg.RateLimitRPS)
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid development config",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				APIKey:        "", // OK in development
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 240,
			},
			wantErr: false,
		},
		{
			name: "valid production config",
			config: Config{
				Port:          8080,
				Env:           EnvProduction,
				DatabasePath:  "/data/lunar.db",
				APIKey:        "required-in-prod",
				LogLevel:      "info",
				LogFormat:     "json",
				GridCacheSize: 240,
			},
			wantErr: false,
		},
		{
			name: "production requires API key",
			config: Config{
				Port:          8080,
				Env:           EnvProduction,
				DatabasePath:  "/data/lunar.db",
				APIKey:        "", // Missing!
				LogLevel:      "info",
				LogFormat:     "json",
				GridCacheSize: 240,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too low",
			config: Config{
				Port:          0,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 240,
			},
			wantErr: true,
		},
		{
			name: "invalid port - too high",
			config: Config{
				Port:          70000,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 240,
			},
			wantErr: true,
		},
		{
			name: "invalid environment",
			config: Config{
				Port:          8080,
				Env:           "invalid",
				DatabasePath:  "./data/test.db",
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 240,
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				LogLevel:      "verbose", // Not valid
				LogFormat:     "text",
				GridCacheSize: 240,
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				LogLevel:      "info",
				LogFormat:     "xml", // Not valid
				GridCacheSize: 240,
			},
			wantErr: true,
		},
		{
			name: "grid cache too small",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 0,
			},
			wantErr: true,
		},
		{
			name: "negative rate limit",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "./data/test.db",
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 240,
				RateLimitRPS:  -1,
			},
			wantErr: true,
		},
		{
			name: "empty database path",
			config: Config{
				Port:          8080,
				Env:           EnvDevelopment,
				DatabasePath:  "",
				LogLevel:      "info",
				LogFormat:     "text",
				GridCacheSize: 240,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DATABASE_PATH", "API_KEY",
		"LOG_LEVEL", "LOG_FORMAT", "GRID_CACHE_SIZE", "RATE_LIMIT_RPS",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
