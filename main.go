package main

import (
	"fmt"
	"os"

	"techstore/config"

	"github.com/rohanthewiz/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	envFile     string
	logLevel    string
	catalogSrc  string
	catalogFile string
	dbPath      string

	// cfg is resolved once per invocation by loadConfig
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "techstore",
	Short: "TechStore - a server-rendered storefront",
	Long: `TechStore serves a storefront home page and product detail pages.

The catalog comes from the built-in sample data, a YAML/JSON/msgpack file,
or a DuckDB database seeded with 'techstore catalog seed'.

Settings are read from TECHSTORE_* environment variables (optionally from a
.env file); flags override the environment.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to pre-load")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (or set TECHSTORE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&catalogSrc, "catalog", "", "Catalog source: builtin, file, duckdb (or set TECHSTORE_CATALOG)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "Catalog file for the file source (or set TECHSTORE_CATALOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "DuckDB database path (or set TECHSTORE_DB_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig resolves the environment, then applies any flags the user set
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	cfg = config.Load()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("catalog") {
		cfg.Catalog = catalogSrc
	}
	if flags.Changed("catalog-file") {
		cfg.CatalogFile = catalogFile
	}
	if flags.Changed("db-path") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("addr") {
		cfg.Addr = serveAddr
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetLogLevel(cfg.LogLevel)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
