// Package config loads the store's runtime settings from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/serr"
)

// Catalog sources
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceDuckDB  = "duckdb"
)

// Defaults used when the environment says nothing
const (
	DefaultAddr     = ":8000"
	DefaultLogLevel = "info"
	DefaultDBPath   = "./data/techstore.ddb"
)

// Config holds the server and catalog settings.
// Values come from environment variables; command line flags may override them.
type Config struct {
	Addr        string // Listen address (TECHSTORE_ADDR)
	LogLevel    string // debug, info, warn or error (TECHSTORE_LOG_LEVEL)
	Catalog     string // builtin, file or duckdb (TECHSTORE_CATALOG)
	CatalogFile string // YAML, JSON or msgpack catalog (TECHSTORE_CATALOG_FILE)
	DBPath      string // DuckDB database file (TECHSTORE_DB_PATH)
}

// LoadEnvFile pre-loads variables from a .env file. A missing file is not an error,
// and variables already set in the environment win.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return serr.Wrap(err, "failed to load env file "+path)
	}
	return nil
}

// Load reads the configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Addr:        envOr("TECHSTORE_ADDR", DefaultAddr),
		LogLevel:    strings.ToLower(envOr("TECHSTORE_LOG_LEVEL", DefaultLogLevel)),
		Catalog:     strings.ToLower(envOr("TECHSTORE_CATALOG", SourceBuiltin)),
		CatalogFile: os.Getenv("TECHSTORE_CATALOG_FILE"),
		DBPath:      envOr("TECHSTORE_DB_PATH", DefaultDBPath),
	}
	return cfg
}

// Validate fails fast on settings that cannot work together
func (c *Config) Validate() error {
	if c.Addr == "" {
		return serr.New("TECHSTORE_ADDR must not be empty")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return serr.New("invalid TECHSTORE_LOG_LEVEL " + c.LogLevel + ", expected debug, info, warn or error")
	}

	switch c.Catalog {
	case SourceBuiltin:
	case SourceFile:
		if c.CatalogFile == "" {
			return serr.New("TECHSTORE_CATALOG_FILE is required when the catalog source is file")
		}
	case SourceDuckDB:
		if c.DBPath == "" {
			return serr.New("TECHSTORE_DB_PATH is required when the catalog source is duckdb")
		}
	default:
		return serr.New("invalid TECHSTORE_CATALOG " + c.Catalog + ", expected builtin, file or duckdb")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
