package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks variables that would leak in from the host.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PORT", "SERVER_PORT", "SITE_TITLE", "SITE_MAINTENANCE", "API_KEYS", "REQUIRE_API_KEY", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(Sources{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Upload.MaxConcurrent != 4 {
		t.Errorf("Upload.MaxConcurrent = %d, want %d", cfg.Upload.MaxConcurrent, 4)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v, want 2h", cfg.Session.TTL)
	}
	if cfg.Site.Title != "ExploreData Tool" {
		t.Errorf("Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Site.Maintenance {
		t.Error("Site.Maintenance should default to false")
	}
	if cfg.View.PlotWidth != 20 || cfg.View.PlotHeight != 8 {
		t.Errorf("plot size = %vx%v, want 20x8", cfg.View.PlotWidth, cfg.View.PlotHeight)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_MAX_CONCURRENT", "10")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SITE_MAINTENANCE", "true")
	t.Setenv("PLOT_WIDTH_INCHES", "12.5")

	cfg, err := LoadFrom(Sources{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Upload.MaxConcurrent != 10 {
		t.Errorf("Upload.MaxConcurrent = %d, want %d", cfg.Upload.MaxConcurrent, 10)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if !cfg.Site.Maintenance {
		t.Error("Site.Maintenance = false, want true")
	}
	if cfg.View.PlotWidth != 12.5 {
		t.Errorf("View.PlotWidth = %v, want 12.5", cfg.View.PlotWidth)
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg, err := LoadFrom(Sources{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
}

func TestLoad_Duration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("UPLOAD_MAX_WAIT_TIME", "1m30s")

	cfg, err := LoadFrom(Sources{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Upload.MaxWaitTime != 90*time.Second {
		t.Errorf("Upload.MaxWaitTime = %v, want %v", cfg.Upload.MaxWaitTime, 90*time.Second)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "forever")

	_, err := LoadFrom(Sources{})
	if err == nil || !strings.Contains(err.Error(), "SESSION_TTL") {
		t.Fatalf("LoadFrom() error = %v, want one naming SESSION_TTL", err)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")

	cfg, err := LoadFrom(Sources{})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	expected := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(expected) {
		t.Fatalf("TrustedProxies length = %d, want %d", len(cfg.Security.TrustedProxies), len(expected))
	}
	for i, v := range expected {
		if cfg.Security.TrustedProxies[i] != v {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], v)
		}
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "7000")

	path := filepath.Join(t.TempDir(), "explore.yaml")
	content := `
server:
  port: 9999
  read_timeout: 5s
site:
  title: Team Explorer
  maintenance: true
security:
  api_keys:
    - alpha
    - beta
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(Sources{File: path})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want env to win over file", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.Title != "Team Explorer" || !cfg.Site.Maintenance {
		t.Errorf("Site = %+v", cfg.Site)
	}
	if strings.Join(cfg.Security.APIKeys, ",") != "alpha,beta" {
		t.Errorf("APIKeys = %v", cfg.Security.APIKeys)
	}
	if cfg.Session.CookieName != "explore_session" {
		t.Errorf("Session.CookieName = %q, want default", cfg.Session.CookieName)
	}
}

func TestLoad_MissingYAMLFile(t *testing.T) {
	clearEnv(t)
	if _, err := LoadFrom(Sources{File: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatal("LoadFrom() expected error for missing config file")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "json")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SITE_TITLE=From Dotenv\nLOG_FORMAT=text\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv sets variables process-wide; register cleanup for the one we expect it to set.
	t.Cleanup(func() { os.Unsetenv("SITE_TITLE") })
	os.Unsetenv("SITE_TITLE")

	cfg, err := LoadFrom(Sources{DotEnv: []string{path, filepath.Join(t.TempDir(), "missing.env")}})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Site.Title != "From Dotenv" {
		t.Errorf("Site.Title = %q, want value from .env", cfg.Site.Title)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want the environment to win over .env", cfg.Logging.Format)
	}
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Upload:  UploadConfig{MaxFileSize: 1, MaxConcurrent: 1, MaxWaitTime: time.Second},
		Session: SessionConfig{TTL: time.Hour, Max: 10, CookieName: "s"},
		View:    ViewConfig{PlotWidth: 20, PlotHeight: 8},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100, UploadLimit: 10},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid port", func(c *Config) { c.Server.Port = 99999 }, "SERVER_PORT"},
		{"zero session ttl", func(c *Config) { c.Session.TTL = 0 }, "SESSION_TTL"},
		{"negative preview", func(c *Config) { c.View.PreviewMaxRows = -1 }, "PREVIEW_MAX_ROWS"},
		{"zero plot size", func(c *Config) { c.View.PlotHeight = 0 }, "PLOT_HEIGHT_INCHES"},
		{"api key required without keys", func(c *Config) { c.Security.RequireAPIKey = true }, "API_KEYS"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"invalid log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantSub == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error should mention %s: %v", tt.wantSub, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString_MasksAPIKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Security.APIKeys = []string{"topsecret"}

	str := cfg.String()
	if strings.Contains(str, "topsecret") {
		t.Error("String() should mask API keys")
	}
	if !strings.Contains(str, masked) {
		t.Error("String() should contain the mask placeholder")
	}
}

func TestDump(t *testing.T) {
	cfg := validConfig()
	cfg.Site.Title = "Explorer"
	cfg.Security.APIKeys = []string{"topsecret"}

	var buf bytes.Buffer
	if err := cfg.Dump(&buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "topsecret") {
		t.Error("Dump() leaked an API key")
	}
	for _, want := range []string{"server:", "port: 8080", "title: Explorer", "shutdown_timeout: 1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}
	if cfg.Security.APIKeys[0] != "topsecret" {
		t.Error("Dump() modified the original config")
	}
}
