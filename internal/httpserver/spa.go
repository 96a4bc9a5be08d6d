package httpserver

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// spaHandler serves real files from the asset tree and index.html for every other path.
type spaHandler struct {
	assets fs.FS
	index  []byte
}

func newSPAHandler(assets fs.FS) (*spaHandler, error) {
	if assets == nil {
		return nil, errors.New("httpserver: storefront assets are required")
	}
	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return nil, err
	}
	return &spaHandler{assets: assets, index: index}, nil
}

func (h *spaHandler) serve(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		name := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
		if name != "" && name != "index.html" && h.isFile(name) {
			c.FileFromFS(name, http.FS(h.assets))
			return
		}
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.index)
}

func (h *spaHandler) isFile(name string) bool {
	info, err := fs.Stat(h.assets, name)
	return err == nil && !info.IsDir()
}
