package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lrucache/internal/cache"
	pkgerrors "lrucache/pkg/errors"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file NewConfig looks for
const FileName = "config.yaml"

const defaultShutdownTimeout = 5 * time.Second

var validate = validator.New()

type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error fatal"`
	File  string `yaml:"file"`
}

// CacheConfig describes a named cache created at startup
type CacheConfig struct {
	Name     string `yaml:"name" validate:"required"`
	Capacity int    `yaml:"capacity" validate:"gte=1"`
	Shards   int    `yaml:"shards" validate:"gte=1,ltefield=Capacity"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`

	// Used by caches that don't set their own capacity or shard count
	DefaultCapacity int `yaml:"default_capacity" validate:"gte=1"`
	DefaultShards   int `yaml:"default_shards" validate:"gte=1"`

	Caches []CacheConfig `yaml:"caches" validate:"dive"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Log: LogConfig{
			Level: "info",
		},
		DefaultCapacity: cache.DefaultCapacity,
		DefaultShards:   1,
	}
}

// NewConfig loads <dir>/config.yaml, falling back to defaults when the file
// does not exist
func NewConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		conf := Default()
		return conf, conf.Validate()
	}
	return FromFile(path)
}

// FromFile reads a YAML config file on top of the defaults
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf := Default()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate fills per-cache defaults and checks the result
func (c *Config) Validate() error {
	// A zero timeout would cancel the graceful shutdown immediately
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	seen := make(map[string]bool, len(c.Caches))
	for i := range c.Caches {
		cc := &c.Caches[i]
		if cc.Capacity == 0 {
			cc.Capacity = c.DefaultCapacity
		}
		if cc.Shards == 0 {
			cc.Shards = c.DefaultShards
		}
		if seen[cc.Name] {
			return fmt.Errorf("%w: duplicate cache %q", pkgerrors.ErrInvalidConfig, cc.Name)
		}
		seen[cc.Name] = true
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", pkgerrors.ErrInvalidConfig, err)
	}
	return nil
}
