package web

import (
	"techstore/cart"
	"techstore/icons"
	"techstore/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Options are the server's collaborators. Icons and Cart default to the inline
// SVG renderer and the logging cart hook.
type Options struct {
	Server  rweb.ServerOptions
	Catalog models.Catalog
	Icons   icons.Renderer
	Cart    cart.Hook
}

// NewServer creates and configures the RWeb server
func NewServer(opts Options) *rweb.Server {
	if opts.Icons == nil {
		opts.Icons = icons.SVG{}
	}
	if opts.Cart == nil {
		opts.Cart = cart.LogHook{}
	}

	s := rweb.NewServer(opts.Server)

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(SessionMiddleware)         // Session cookie for the cart hook
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(LoggingMiddleware)         // Request logging

	setupRoutes(s, &handlers{catalog: opts.Catalog, icons: opts.Icons, cart: opts.Cart})

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("TechStore server starting", "address", address)
	return s.Run()
}
