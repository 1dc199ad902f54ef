package main

import (
	"techstore/web"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (or set TECHSTORE_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	catalog, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	srv := web.NewServer(web.Options{
		Server: rweb.ServerOptions{
			Address: cfg.Addr,
			Verbose: cfg.LogLevel == "debug",
		},
		Catalog: catalog,
	})

	logger.Info("Catalog ready", "source", cfg.Catalog)
	return web.Run(srv, cfg.Addr)
}
