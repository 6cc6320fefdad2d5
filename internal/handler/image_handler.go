package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImageStore resolves sanitized image filenames to on-disk paths.
type ImageStore interface {
	ImagePath(name string) (string, bool)
}

type ImageHandler struct {
	store ImageStore
}

func NewImageHandler(store ImageStore) *ImageHandler {
	return &ImageHandler{store: store}
}

func (h *ImageHandler) GetImage(c *gin.Context) {
	path, ok := h.store.ImagePath(c.Param("image"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.File(path)
}
