package handler

import (
	"net/http"
	"strings"

	"user-directory-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageHandler serves files from the image directory. Anything that is not a
// regular, non-hidden file is answered like an unknown route.
type ImageHandler struct {
	root http.FileSystem
	log  *zap.Logger
}

// NewImageHandler creates a new ImageHandler rooted at dir.
func NewImageHandler(dir string, log *zap.Logger) *ImageHandler {
	return &ImageHandler{root: http.Dir(dir), log: log}
}

// ServeImage handles GET /images/*filepath
func (h *ImageHandler) ServeImage(c *gin.Context) {
	name := c.Param("filepath")
	if strings.HasSuffix(name, "/") || hasHiddenSegment(name) {
		h.notFound(c, name, "directory or hidden path")
		return
	}

	// http.Dir cleans name and keeps it inside the root
	f, err := h.root.Open(name)
	if err != nil {
		h.notFound(c, name, "missing file")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		h.notFound(c, name, "not a regular file")
		return
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

func (h *ImageHandler) notFound(c *gin.Context, name, reason string) {
	logger.WithContext(c.Request.Context(), h.log).Debug("image not served",
		zap.String("path", name),
		zap.String("reason", reason),
	)
	RouteNotFound(c)
}

func hasHiddenSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}
