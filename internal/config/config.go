package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir   = ".labelshield"
	DefaultConfigFile  = "config.yaml"
	DefaultCatalogFile = "catalog.yaml"
	DefaultPacksDir    = "packs"
	DefaultLogFile     = "audit.jsonl"
	DefaultDBFile      = "labelshield.db"
	DefaultAddr        = "127.0.0.1:8080"
	DefaultCacheTTL    = 24 * time.Hour
)

// Cache backends.
const (
	CacheSQLite = "sqlite"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Environment overrides. They win over config.yaml; explicit flags win over
// both.
const (
	EnvConfigDir = "LABELSHIELD_CONFIG_DIR"
	EnvDBPath    = "LABELSHIELD_DB_PATH"
	EnvRedisAddr = "LABELSHIELD_REDIS_ADDR"
	EnvAddr      = "LABELSHIELD_ADDR"
)

type Config struct {
	ConfigDir    string
	CatalogPath  string
	PacksDir     string
	LogPath      string
	DBPath       string
	LogRedaction bool
	Server       ServerConfig
	Cache        CacheConfig
}

// ServerConfig controls the HTTP and MCP listener.
type ServerConfig struct {
	Addr string
}

// CacheConfig selects where analysis results are cached.
type CacheConfig struct {
	// Backend is one of "sqlite", "redis" or "none". Default: "sqlite".
	Backend   string
	RedisAddr string
	TTL       time.Duration
}

// Flags are the command-line overrides. Empty fields are ignored.
type Flags struct {
	CatalogPath string
	LogPath     string
	DBPath      string
	Addr        string
}

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	CatalogPath  string `yaml:"catalog_path"`
	PacksDir     string `yaml:"packs_dir"`
	LogPath      string `yaml:"log_path"`
	DBPath       string `yaml:"db_path"`
	LogRedaction *bool  `yaml:"log_redaction"`
	Server       struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Cache struct {
		Backend   string `yaml:"backend"`
		RedisAddr string `yaml:"redis_addr"`
		TTL       string `yaml:"ttl"`
	} `yaml:"cache"`
}

func Load(flags Flags) (*Config, error) {
	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(homeDir, DefaultConfigDir)
	}

	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigDir:    configDir,
		CatalogPath:  filepath.Join(configDir, DefaultCatalogFile),
		PacksDir:     filepath.Join(configDir, DefaultPacksDir),
		LogPath:      filepath.Join(configDir, DefaultLogFile),
		DBPath:       filepath.Join(configDir, DefaultDBFile),
		LogRedaction: true,
		Server:       ServerConfig{Addr: DefaultAddr},
		Cache:        CacheConfig{Backend: CacheSQLite, TTL: DefaultCacheTTL},
	}

	if err := cfg.applyFile(filepath.Join(configDir, DefaultConfigFile)); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyFlags(flags)

	switch cfg.Cache.Backend {
	case CacheSQLite, CacheRedis, CacheNone:
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	setIf(&c.CatalogPath, fc.CatalogPath)
	setIf(&c.PacksDir, fc.PacksDir)
	setIf(&c.LogPath, fc.LogPath)
	setIf(&c.DBPath, fc.DBPath)
	setIf(&c.Server.Addr, fc.Server.Addr)
	setIf(&c.Cache.Backend, fc.Cache.Backend)
	setIf(&c.Cache.RedisAddr, fc.Cache.RedisAddr)
	if fc.LogRedaction != nil {
		c.LogRedaction = *fc.LogRedaction
	}
	if fc.Cache.TTL != "" {
		ttl, err := time.ParseDuration(fc.Cache.TTL)
		if err != nil {
			return fmt.Errorf("invalid cache.ttl %q: %w", fc.Cache.TTL, err)
		}
		c.Cache.TTL = ttl
	}
	return nil
}

func (c *Config) applyEnv() {
	setIf(&c.DBPath, os.Getenv(EnvDBPath))
	setIf(&c.Server.Addr, os.Getenv(EnvAddr))
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		c.Cache.RedisAddr = addr
		c.Cache.Backend = CacheRedis
	}
}

func (c *Config) applyFlags(f Flags) {
	setIf(&c.CatalogPath, f.CatalogPath)
	setIf(&c.LogPath, f.LogPath)
	setIf(&c.DBPath, f.DBPath)
	setIf(&c.Server.Addr, f.Addr)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
