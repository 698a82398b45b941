package config

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const masked = "[MASKED]"

// Masked returns a copy of c with secrets replaced.
func (c *Config) Masked() Config {
	out := *c
	if len(c.Security.APIKeys) > 0 {
		out.Security.APIKeys = make([]string, len(c.Security.APIKeys))
		for i := range out.Security.APIKeys {
			out.Security.APIKeys[i] = masked
		}
	}
	out.Security.TrustedProxies = append([]string(nil), c.Security.TrustedProxies...)
	return out
}

// Dump writes the effective configuration as YAML with secrets masked,
// using the same keys LoadFrom reads from a config file.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Masked()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// String returns a safe string representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Server: {Addr: %q}, ", c.Server.Addr())
	fmt.Fprintf(&b, "Upload: {MaxFileSize: %d, MaxConcurrent: %d}, ", c.Upload.MaxFileSize, c.Upload.MaxConcurrent)
	fmt.Fprintf(&b, "Session: {TTL: %s, Max: %d}, ", c.Session.TTL, c.Session.Max)
	fmt.Fprintf(&b, "Site: {Title: %q, Maintenance: %v}, ", c.Site.Title, c.Site.Maintenance)
	fmt.Fprintf(&b, "Rate: {Enabled: %v, RequestsPerMinute: %d}, ", c.Rate.Enabled, c.Rate.RequestsPerMinute)
	keys := "[]"
	if len(c.Security.APIKeys) > 0 {
		keys = fmt.Sprintf("%s x%d", masked, len(c.Security.APIKeys))
	}
	fmt.Fprintf(&b, "Security: {RequireAPIKey: %v, APIKeys: %s}, ", c.Security.RequireAPIKey, keys)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")
	return b.String()
}
