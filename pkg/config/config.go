// Package config loads streemap's TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/streemap/config.toml (falling back to
// ~/.config/streemap/config.toml) and every key is optional:
//
//	[layout]
//	algorithm = "squarify"
//	width = 1200
//	height = 800
//	scaled = true
//	sort = false
//	padding = 2
//	max_depth = 0          # 0 lays out every level
//
//	[render]
//	formats = ["svg", "png"]
//	style = "outline"
//	labels = true
//	scale = 2              # png resolution multiplier
//
//	[cache]
//	backend = "redis"      # none, file, memory, redis or mongo
//	redis_addr = "localhost:6379"
//	prefix = "streemap:"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override the file; pipeline defaults fill whatever is
// left unset.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/streemap/pkg/cache"
	"github.com/matzehuels/streemap/pkg/errors"
	"github.com/matzehuels/streemap/pkg/treemap"
)

// AppName names the configuration and cache directories.
const AppName = "streemap"

// Config is the parsed configuration file.
type Config struct {
	Layout Layout `toml:"layout"`
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Layout holds defaults for layout computation.
type Layout struct {
	Algorithm string  `toml:"algorithm"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Scaled    *bool   `toml:"scaled"`
	Sort      bool    `toml:"sort"`
	Padding   float64 `toml:"padding"`
	MaxDepth  int     `toml:"max_depth"`
}

// Render holds defaults for rendering.
type Render struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Labels  *bool    `toml:"labels"`
	Scale   float64  `toml:"scale"`
}

// Cache selects the cache backend.
type Cache struct {
	Backend string        `toml:"backend"`
	Dir     string        `toml:"dir"`
	Prefix  string        `toml:"prefix"`
	TTL     time.Duration `toml:"ttl"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures `streemap serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// DefaultPath returns the configuration file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// DefaultCacheDir returns the file cache location.
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the configuration at path. With an empty path it reads the
// default location, where a missing file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "config %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates configuration data.
func Parse(data []byte) (Config, error) {
	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "unknown config key %q", undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that can be checked without the pipeline.
func (c *Config) Validate() error {
	if c.Layout.Algorithm != "" {
		if _, ok := treemap.ParseAlgorithm(c.Layout.Algorithm); !ok {
			return errors.New(errors.ErrCodeInvalidAlgorithm, "config: unknown algorithm %q", c.Layout.Algorithm)
		}
	}
	if c.Layout.Width < 0 || c.Layout.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "config: width and height must not be negative")
	}
	if c.Layout.Padding < 0 || c.Layout.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "config: padding and max_depth must not be negative")
	}
	if c.Render.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "config: scale must not be negative")
	}
	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendMemory, cache.BackendRedis, cache.BackendMongo:
	default:
		return errors.New(errors.ErrCodeUnsupported, "config: unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// CacheConfig converts the [cache] section for cache.Open. An unset file
// cache directory falls back to DefaultCacheDir.
func (c *Config) CacheConfig() cache.Config {
	dir := c.Cache.Dir
	if dir == "" && (c.Cache.Backend == "" || c.Cache.Backend == cache.BackendFile) {
		dir, _ = DefaultCacheDir()
	}
	return cache.Config{
		Backend: c.Cache.Backend,
		Dir:     dir,
		Redis: cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
			Prefix:   c.Cache.Prefix,
		},
		Mongo: cache.MongoConfig{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDatabase,
			Collection: c.Cache.MongoCollection,
		},
	}
}

// Bool dereferences an optional setting.
func Bool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
