package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	chdirForTest(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Session.Backend != SessionBackendMemory {
		t.Errorf("backend = %q, want memory", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("ttl = %v, want 30m", cfg.Session.TTL)
	}
	if cfg.Triage.Timezone != "Europe/London" || cfg.Triage.RoutePrefix != "/emergency" {
		t.Errorf("triage = %+v", cfg.Triage)
	}
	if len(cfg.Triage.Cities) != 0 {
		t.Errorf("cities = %v, want empty", cfg.Triage.Cities)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	chdirForTest(t, t.TempDir())
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("MY_REDIS", "redis://localhost:6379/0")
	t.Setenv("REDIS_URL", "${MY_REDIS}")
	t.Setenv("TRIAGE_CITIES", "Leeds, York ,,Hull")
	t.Setenv("RATE_LIMIT_PER_MIN", "0")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Session.Backend != SessionBackendRedis {
		t.Errorf("backend = %q, want redis", cfg.Session.Backend)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Errorf("redis url = %q", cfg.Redis.URL)
	}
	want := []string{"Leeds", "York", "Hull"}
	if len(cfg.Triage.Cities) != len(want) {
		t.Fatalf("cities = %v, want %v", cfg.Triage.Cities, want)
	}
	for i := range want {
		if cfg.Triage.Cities[i] != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, cfg.Triage.Cities[i], want[i])
		}
	}
	if cfg.RateLimit.PerMin != 0 {
		t.Errorf("per_min = %d, want 0", cfg.RateLimit.PerMin)
	}
	if cfg.Telegram.BotToken != "123:abc" {
		t.Errorf("telegram token = %q", cfg.Telegram.BotToken)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			Session:    SessionConfig{Backend: SessionBackendMemory, TTL: time.Minute},
			Triage:     TriageConfig{Timezone: "UTC"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"redis without url", func(c *Config) { c.Session.Backend = SessionBackendRedis }, true},
		{"redis with url", func(c *Config) {
			c.Session.Backend = SessionBackendRedis
			c.Redis.URL = "redis://localhost:6379"
		}, false},
		{"unknown backend", func(c *Config) { c.Session.Backend = "postgres" }, true},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, true},
		{"bad timezone", func(c *Config) { c.Triage.Timezone = "Mars/Olympus" }, true},
		{"negative rate", func(c *Config) { c.RateLimit.PerMin = -1 }, true},
		{"telegram webhook without token", func(c *Config) { c.Telegram.WebhookURL = "https://x/webhook/telegram" }, true},
		{"telegram with token", func(c *Config) {
			c.Telegram.BotToken = "123:abc"
			c.Telegram.WebhookURL = "https://x/webhook/telegram"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
