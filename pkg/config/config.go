// Package config loads pyunparse settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/pyunparse/config.toml (or the platform
// equivalent) unless a path is given explicitly:
//
//	[render]
//	indent = "    "
//	raw_strings = true
//
//	[cache]
//	backend = "file"      # file, redis or none
//	dir = ""              # defaults to the user cache directory
//	ttl = "168h"
//	redis_addr = "localhost:6379"
//	prefix = "pyunparse:"
//
//	[server]
//	addr = ":8080"
//
// A missing file yields [Default]. Command-line flags override file values.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pyunparse/pkg/errors"
)

const (
	appName  = "pyunparse"
	fileName = "config.toml"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig controls the output text.
type RenderConfig struct {
	Indent     string `toml:"indent"`
	RawStrings bool   `toml:"raw_strings"`
}

// CacheConfig selects and configures the render cache.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	TTL           time.Duration `toml:"ttl"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	Prefix        string        `toml:"prefix"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Indent:     "    ",
			RawStrings: true,
		},
		Cache: CacheConfig{
			Backend:   BackendFile,
			TTL:       7 * 24 * time.Hour,
			RedisAddr: "localhost:6379",
			Prefix:    appName + ":",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			MaxBodyBytes: 8 << 20,
		},
	}
}

// Path returns the default location of the config file.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName, fileName), nil
}

// Load reads the config file at path on top of [Default]. An empty path means
// [Path]. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if stderrors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := errors.ValidateIndent(c.Render.Indent); err != nil {
		return err
	}
	if err := errors.ValidateCacheBackend(c.Cache.Backend); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	if c.Cache.Backend == BackendRedis {
		if err := errors.ValidateAddr(c.Cache.RedisAddr); err != nil {
			return err
		}
	}
	if c.Cache.Dir != "" {
		if err := errors.ValidatePath(c.Cache.Dir); err != nil {
			return err
		}
	}
	if err := errors.ValidateAddr(c.Server.Addr); err != nil {
		return err
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server max_body_bytes must be positive")
	}
	return nil
}

// Encode returns the configuration as TOML text.
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", err
	}
	return b.String(), nil
}
