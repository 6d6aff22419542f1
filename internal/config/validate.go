package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535 (got %d)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be > 0")
	}

	u, err := url.Parse(c.LexicalService.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("lexical_service.base_url must be an absolute URL (got %q)", c.LexicalService.BaseURL)
	}
	if c.LexicalService.Timeout <= 0 {
		return fmt.Errorf("lexical_service.timeout must be > 0 (got %s)", c.LexicalService.Timeout)
	}

	if strings.TrimSpace(c.Index.Path) == "" {
		return fmt.Errorf("index.path must not be empty")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
