// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables, an optional .env file and
// an optional YAML file, applies defaults and validates everything on startup
// to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Every setting has an environment variable; the yaml tags name the same
// setting in a config file.
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Upload   UploadConfig    `yaml:"upload"`
	Session  SessionConfig   `yaml:"session"`
	Site     SiteConfig      `yaml:"site"`
	View     ViewConfig      `yaml:"view"`
	Rate     RateLimitConfig `yaml:"rate_limit"`
	Security SecurityConfig  `yaml:"security"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" yaml:"host" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" yaml:"port" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 30s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" yaml:"read_timeout" default:"30s"`

	// WriteTimeout is the maximum duration for writing the response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" yaml:"write_timeout" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" yaml:"idle_timeout" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" yaml:"request_timeout" default:"60s"`
}

// UploadConfig holds dataset upload settings.
type UploadConfig struct {
	// MaxFileSize is the maximum accepted file size in bytes (default: 200MB)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" yaml:"max_file_size" default:"209715200"`

	// MaxConcurrent is the maximum number of files parsed at once (default: 4)
	MaxConcurrent int `env:"UPLOAD_MAX_CONCURRENT" yaml:"max_concurrent" default:"4"`

	// MaxWaitTime is how long an upload waits for a parse slot (default: 30s)
	MaxWaitTime time.Duration `env:"UPLOAD_MAX_WAIT_TIME" yaml:"max_wait_time" default:"30s"`
}

// SessionConfig holds in-memory session settings.
type SessionConfig struct {
	// TTL is how long an idle session keeps its dataset (default: 2h)
	TTL time.Duration `env:"SESSION_TTL" yaml:"ttl" default:"2h"`

	// Max is the number of sessions kept before the oldest is evicted (default: 1000)
	Max int `env:"SESSION_MAX" yaml:"max" default:"1000"`

	// CookieName names the session cookie (default: explore_session)
	CookieName string `env:"SESSION_COOKIE" yaml:"cookie" default:"explore_session"`

	// CookieSecure marks the cookie Secure; enable behind TLS (default: false)
	CookieSecure bool `env:"SESSION_COOKIE_SECURE" yaml:"cookie_secure" default:"false"`
}

// SiteConfig holds page settings.
type SiteConfig struct {
	// Title is the page and sidebar title (default: ExploreData Tool)
	Title string `env:"SITE_TITLE" yaml:"title" default:"ExploreData Tool"`

	// Icon is the favicon URL (default: /static/icon.svg)
	Icon string `env:"SITE_ICON" yaml:"icon" default:"/static/icon.svg"`

	// Caption is shown under the sidebar title
	Caption string `env:"SITE_CAPTION" yaml:"caption" default:"Interactive exploratory data analysis"`

	// Maintenance replaces every page with the maintenance notice (default: false)
	Maintenance bool `env:"SITE_MAINTENANCE" yaml:"maintenance" default:"false"`
}

// ViewConfig holds display settings.
type ViewConfig struct {
	// PreviewMaxRows caps the preview table; 0 shows every row (default: 1000)
	PreviewMaxRows int `env:"PREVIEW_MAX_ROWS" yaml:"preview_max_rows" default:"1000"`

	// PlotWidth is the figure width in inches (default: 20)
	PlotWidth float64 `env:"PLOT_WIDTH_INCHES" yaml:"plot_width_inches" default:"20"`

	// PlotHeight is the figure height in inches (default: 8)
	PlotHeight float64 `env:"PLOT_HEIGHT_INCHES" yaml:"plot_height_inches" default:"8"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" yaml:"enabled" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 300)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" yaml:"requests_per_minute" default:"300"`

	// UploadLimit is requests per minute for upload endpoints (default: 20)
	UploadLimit int `env:"RATE_LIMIT_UPLOAD" yaml:"upload" default:"20"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES" yaml:"trusted_proxies"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" yaml:"enable_csp" default:"true"`

	// RequireAPIKey guards /api with an X-API-Key header (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" yaml:"require_api_key" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS" yaml:"api_keys" secret:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" yaml:"level" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" yaml:"format" default:"text"`

	// SeqURL additionally ships logs to a Seq server when set
	SeqURL string `env:"LOG_SEQ_URL" yaml:"seq_url"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
