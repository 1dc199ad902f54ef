package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Stylesheet and placeholder product images
//
//go:embed all:static
var staticFiles embed.FS

// faviconSVG is served for /favicon.ico so no separate icon file is needed
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#2563eb"/><text x="250" y="320" font-family="Arial,sans-serif" font-weight="900" font-size="220" fill="white" text-anchor="middle">TS</text></svg>`

var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", serveStatic(staticFS))
}

// serveStatic answers /static/{name} from fsys; directories and missing files are 404
func serveStatic(fsys fs.FS) rweb.Handler {
	return func(c rweb.Context) error {
		name := strings.TrimPrefix(c.Request().Path(), "/static/")

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
			c.Response().SetHeader("Content-Type", ct)
		}

		// Product images never change in place; the stylesheet is versioned by query string
		if strings.HasPrefix(name, "img/") {
			c.Response().SetHeader("Cache-Control", "public, max-age=31536000")
		} else {
			c.Response().SetHeader("Cache-Control", "public, max-age=3600")
		}

		return c.Bytes(content)
	}
}
