package main

import (
	"techstore/config"
	"techstore/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

var seedFrom string

// catalogCmd groups catalog maintenance commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the product catalog",
	Long: `Manage the product catalog.

Available subcommands:
  seed     - Load a catalog into the DuckDB database
  snapshot - Write the configured catalog as a msgpack snapshot`,
}

// catalogSeedCmd replaces the DuckDB catalog contents
var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a catalog into the DuckDB database",
	Long: `Replace the contents of the DuckDB catalog at --db-path.

The source is the built-in sample catalog, or the YAML/JSON/msgpack file
given with --from. The source is validated before anything is written.`,
	RunE: runCatalogSeed,
}

// catalogSnapshotCmd writes a msgpack snapshot
var catalogSnapshotCmd = &cobra.Command{
	Use:   "snapshot <file.msgpack>",
	Short: "Write the configured catalog as a msgpack snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogSnapshot,
}

func init() {
	catalogSeedCmd.Flags().StringVar(&seedFrom, "from", "", "Catalog file to seed from (default: built-in sample catalog)")

	catalogCmd.AddCommand(catalogSeedCmd)
	catalogCmd.AddCommand(catalogSnapshotCmd)
}

func runCatalogSeed(cmd *cobra.Command, args []string) error {
	var src models.Catalog = models.BuiltinCatalog()
	if seedFrom != "" {
		fileCatalog, err := models.LoadCatalogFile(seedFrom)
		if err != nil {
			return err
		}
		src = fileCatalog
	}

	dc, err := models.OpenDuckCatalog(cfg.DBPath)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.Seed(src); err != nil {
		return err
	}

	logger.Info("Catalog seeded", "db", cfg.DBPath, "from", seedSource())
	return nil
}

func seedSource() string {
	if seedFrom == "" {
		return config.SourceBuiltin
	}
	return seedFrom
}

func runCatalogSnapshot(cmd *cobra.Command, args []string) error {
	catalog, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	if err := models.WriteSnapshot(args[0], catalog); err != nil {
		return err
	}

	logger.Info("Catalog snapshot written", "path", args[0], "source", cfg.Catalog)
	return nil
}

// openCatalog builds the catalog the config asks for. The returned func releases it.
func openCatalog(c *config.Config) (models.Catalog, func(), error) {
	noop := func() {}

	switch c.Catalog {
	case config.SourceFile:
		mc, err := models.LoadCatalogFile(c.CatalogFile)
		if err != nil {
			return nil, noop, err
		}
		return mc, noop, nil

	case config.SourceDuckDB:
		dc, err := models.OpenDuckCatalog(c.DBPath)
		if err != nil {
			return nil, noop, err
		}
		return dc, func() {
			if err := dc.Close(); err != nil {
				logger.LogErr(serr.Wrap(err, "failed to close catalog database"))
			}
		}, nil

	default:
		return models.BuiltinCatalog(), noop, nil
	}
}
