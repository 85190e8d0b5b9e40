package navigation

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"eventbooking/internal/pkg/response"
)

const indexFile = "index.html"

// SPA serves a built front-end from dir. Files are served as is; every other
// GET is a page path that the page guard has already let through.
type SPA struct {
	dir string
}

func NewSPA(dir string) *SPA {
	return &SPA{dir: dir}
}

// Assets serves an existing file and stops the chain, otherwise passes on.
// Missing paths with an extension are answered with 404.
func (s *SPA) Assets(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		response.Error(c, http.StatusNotFound, "not_found")
		c.Abort()
		return
	}

	clean := path.Clean("/" + c.Request.URL.Path)
	if clean != "/" {
		file := filepath.Join(s.dir, filepath.FromSlash(clean))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			c.Abort()
			return
		}
		if path.Ext(clean) != "" {
			response.Text(c, http.StatusNotFound, "Not Found")
			c.Abort()
			return
		}
	}
	c.Next()
}

// Index renders the SPA shell.
func (s *SPA) Index(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.File(filepath.Join(s.dir, indexFile))
}
