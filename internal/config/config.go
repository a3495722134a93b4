package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = 5000
	defaultSitePort   = 3000
	defaultAPIBaseURL = "http://localhost:5000"
)

type Config struct {
	// Port is where the contact API listens.
	Port int
	// SitePort is where the landing page listens.
	SitePort int
	// APIBaseURL is how the landing page reaches the contact API.
	APIBaseURL string
	// AllowedOrigin is sent as Access-Control-Allow-Origin by the API.
	AllowedOrigin string

	LogLevel  string
	LogFormat string

	// ContactLogTable enables the DynamoDB submission log when set.
	ContactLogTable string
	// ParamPrefix enables moderation screening when set.
	ParamPrefix string
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) SiteAddr() string {
	return ":" + strconv.Itoa(c.SitePort)
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	port, err := envPort(getenv, "PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	sitePort, err := envPort(getenv, "SITE_PORT", defaultSitePort)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            port,
		SitePort:        sitePort,
		APIBaseURL:      strings.TrimRight(envOr(getenv, "API_BASE_URL", defaultAPIBaseURL), "/"),
		AllowedOrigin:   envOr(getenv, "ALLOWED_ORIGIN", "*"),
		LogLevel:        strings.ToLower(envOr(getenv, "LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(envOr(getenv, "LOG_FORMAT", "text")),
		ContactLogTable: strings.TrimSpace(getenv("CONTACT_LOG_TABLE")),
		ParamPrefix:     strings.TrimRight(strings.TrimSpace(getenv("PARAM_PREFIX")), "/"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL %q must be one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT %q must be text or json", c.LogFormat)
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("config: API_BASE_URL %q must be an http(s) url", c.APIBaseURL)
	}
	return nil
}

func envOr(getenv func(string) string, key, def string) string {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envPort(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 65535 {
		return 0, fmt.Errorf("config: %s %q is not a valid port", key, v)
	}
	return n, nil
}
