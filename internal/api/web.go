package api

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Embedded HTML pages and browser assets.
//
// internal/api/web/
//
//	index.html       animal and zookeeper forms
//	animals.html     animal search
//	zookeepers.html  zookeeper form
//	assets/css, assets/js
//
//go:embed web
var embeddedWeb embed.FS

// Page routes and the file each serves.
var pages = map[string]string{
	"/":           "index.html",
	"/animals":    "animals.html",
	"/zookeepers": "zookeepers.html",
}

func getWebFs() static.ServeFileSystem {
	fs, err := static.EmbedFolder(embeddedWeb, "web")
	if err != nil {
		panic("failed to get embedded web filesystem: " + err.Error())
	}
	return fs
}

// MountWeb serves the embedded assets, the named pages, and index.html for
// any other path outside /api.
func MountWeb(r *gin.Engine, logger *slog.Logger) {
	webFS := getWebFs()
	r.Use(static.Serve("/", webFS))

	for route, file := range pages {
		r.GET(route, servePage(webFS, file, logger))
	}

	index := servePage(webFS, "index.html", logger)
	r.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			apiNotFound(c)
			return
		}
		index(c)
	})
}

func servePage(webFS static.ServeFileSystem, name string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := webFS.Open(name)
		if err != nil {
			logger.Error("failed to open page", "page", name, "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		defer f.Close()
		stat, err := f.Stat()
		if err != nil {
			logger.Error("failed to stat page", "page", name, "error", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		http.ServeContent(c.Writer, c.Request, name, stat.ModTime(), f)
	}
}
