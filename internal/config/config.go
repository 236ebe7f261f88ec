package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pratik-anurag/netmon/internal/connlog"
	"github.com/pratik-anurag/netmon/internal/sockets"
)

const (
	// EnvPath names the environment variable holding the config file path.
	EnvPath = "NETMON_CONFIG"
	// DefaultPath is read when present and EnvPath is unset.
	DefaultPath = "netmon.yaml"

	DefaultRefreshInterval = 5
	DefaultColor           = "auto"
	DefaultOwnerResolver   = "none"
)

// Config is the optional netmon.yaml file. Every field has a default, so a
// missing file is the same as an empty one.
type Config struct {
	RefreshInterval int    `yaml:"refresh_interval"`
	LogFile         string `yaml:"log_file"`
	MaxConnections  int    `yaml:"max_connections"`
	Color           string `yaml:"color"`
	OwnerResolver   string `yaml:"owner_resolver"`
	DebugLog        string `yaml:"debug_log"`
}

// Error reports an invalid config value.
type Error struct {
	Field string
	Value any
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config error for %s '%v': %v", e.Field, e.Value, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads the config named by $NETMON_CONFIG, or ./netmon.yaml if it
// exists, or returns the defaults.
func Load() (*Config, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return LoadFile(p)
	}
	cfg, err := LoadFile(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.RefreshInterval == 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = connlog.DefaultPath
	}
	if c.MaxConnections == 0 {
		c.MaxConnections = sockets.DefaultMax
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.OwnerResolver == "" {
		c.OwnerResolver = DefaultOwnerResolver
	}
}

func (c *Config) Validate() error {
	if c.RefreshInterval < 0 {
		return &Error{Field: "refresh_interval", Value: c.RefreshInterval, Err: errors.New("must be positive")}
	}
	if c.MaxConnections < 0 {
		return &Error{Field: "max_connections", Value: c.MaxConnections, Err: errors.New("must be positive")}
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return &Error{Field: "color", Value: c.Color, Err: errors.New("expected auto|always|never")}
	}
	switch strings.ToLower(c.OwnerResolver) {
	case "none", "pid", "process":
	default:
		return &Error{Field: "owner_resolver", Value: c.OwnerResolver, Err: errors.New("expected none|pid|process")}
	}
	return nil
}

// Interval is the refresh interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.RefreshInterval) * time.Second
}
