package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zotoio/halt.sh/internal/cachekey"
	"github.com/zotoio/halt.sh/internal/editorial"
	"github.com/zotoio/halt.sh/internal/model"
	"github.com/zotoio/halt.sh/pkg/cdn"
)

// EditorialGenerator serves or generates the artifact for a resolved
// request.
type EditorialGenerator interface {
	Editorials(ctx context.Context, req editorial.Request) (model.Artifact, error)
}

// KeyChecker answers whether an artifact exists at a key, used when
// resolving non-admin supplied keys.
type KeyChecker interface {
	Exists(key cachekey.Key) bool
}

type EditorialHandler struct {
	generator    EditorialGenerator
	keys         KeyChecker
	cdn          *cdn.Client
	sharedSecret string
	frequency    cachekey.Frequency
	now          func() time.Time
}

func NewEditorialHandler(generator EditorialGenerator, keys KeyChecker, cdnClient *cdn.Client, sharedSecret string, frequency cachekey.Frequency) *EditorialHandler {
	return &EditorialHandler{
		generator:    generator,
		keys:         keys,
		cdn:          cdnClient,
		sharedSecret: sharedSecret,
		frequency:    frequency,
		now:          time.Now,
	}
}

func (h *EditorialHandler) GetEditorials(c *gin.Context) {
	isAdmin := isAdminRequest(c, h.sharedSecret)
	now := h.now()

	supplied := c.Query("cacheKey")
	if supplied != "" && !cachekey.Valid(supplied) {
		slog.Warn("invalid cache key supplied", "value", supplied)
	}
	key := cachekey.Resolve(supplied, isAdmin, h.keys.Exists, now, h.frequency)

	req := editorial.Request{Key: key, Force: isAdmin}
	if isAdmin {
		req.ArticleURL = c.Query("articleUrl")
	}

	artifact, err := h.generator.Editorials(c.Request.Context(), req)
	if err != nil {
		slog.Error("generating editorials", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while generating editorials."})
		return
	}

	c.JSON(http.StatusOK, artifact)

	// Admin regeneration invalidates the edge cache and pre-warms the
	// bucket that follows, off the request path.
	if isAdmin && h.cdn.Active() {
		next := cachekey.Next(now, h.frequency)
		go func() {
			h.cdn.Purge(context.Background())
			h.cdn.Prewarm(next.String())
		}()
	}
}
