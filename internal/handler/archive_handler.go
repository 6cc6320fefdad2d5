package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zotoio/halt.sh/internal/archive"
	"github.com/zotoio/halt.sh/internal/cachekey"
)

// ArchiveIndex paginates stored artifacts newest-first.
type ArchiveIndex interface {
	Page(pageNumber, pageSize int) (archive.Page, error)
}

// KeyLister is the store surface the health check probes.
type KeyLister interface {
	ListKeys() ([]cachekey.Key, error)
}

type ArchiveHandler struct {
	index ArchiveIndex
	store KeyLister
}

func NewArchiveHandler(index ArchiveIndex, store KeyLister) *ArchiveHandler {
	return &ArchiveHandler{index: index, store: store}
}

func (h *ArchiveHandler) GetArchive(c *gin.Context) {
	page := getQueryInt("page", 1, c)
	size := getQueryInt("size", archive.DefaultPageSize, c)

	result, err := h.index.Page(page, size)
	if err != nil {
		slog.Error("error paginating archive", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Archive unavailable"})
		return
	}

	c.JSON(http.StatusOK, ArchiveResponse{
		Editorials: result.Entries,
		Pagination: PaginationResponse{HasNext: result.HasNext},
	})
}

func (h *ArchiveHandler) GetHealth(c *gin.Context) {
	if _, err := h.store.ListKeys(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"cache":  "unreadable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"cache":  "readable",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	value := c.Query(name)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		slog.Warn("invalid query parameter, using default", "param", name, "value", value)
		return defaultValue
	}
	return parsed
}
