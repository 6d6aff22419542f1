package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	LexicalService LexicalServiceConfig `yaml:"lexical_service"`
	Index          IndexConfig          `yaml:"index"`
	Endings        EndingsConfig        `yaml:"endings"`
	Log            LogConfig            `yaml:"log"`
	CORS           CORSConfig           `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LexicalServiceConfig points at the LatinWordNet API.
type LexicalServiceConfig struct {
	BaseURL string        `yaml:"base_url" env:"LWN_BASE_URL" env-default:"https://latinwordnet.exeter.ac.uk"`
	Timeout time.Duration `yaml:"timeout"  env:"LWN_TIMEOUT"  env-default:"10s"`
}

// IndexConfig locates the lemma → URI index on disk.
type IndexConfig struct {
	Path string `yaml:"path" env:"INDEX_PATH" env-default:"uri.csv"`
}

// EndingsConfig selects the ending table. An empty path uses the table
// compiled into the binary.
type EndingsConfig struct {
	Path string `yaml:"path" env:"ENDINGS_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }
