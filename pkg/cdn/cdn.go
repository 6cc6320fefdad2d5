// Package cdn invalidates edge caches after admin regeneration and
// pre-warms the next canonical cache key.
package cdn

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	purgeURL     string
	purgeToken   string
	prewarmURL   string
	sharedSecret string
	httpClient   *http.Client

	// PrewarmDelay gives the CDN purge time to propagate before the
	// warming request is sent.
	PrewarmDelay time.Duration
}

func New(purgeURL, purgeToken, prewarmURL, sharedSecret string) *Client {
	return &Client{
		purgeURL:     purgeURL,
		purgeToken:   purgeToken,
		prewarmURL:   prewarmURL,
		sharedSecret: sharedSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		PrewarmDelay: 10 * time.Second,
	}
}

// Enabled reports whether a purge endpoint is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.purgeURL != ""
}

// Active reports whether any post-admin hook is configured. Purge and
// prewarm are independent; each call no-ops when its own endpoint is
// unset.
func (c *Client) Active() bool {
	return c != nil && (c.purgeURL != "" || c.prewarmURL != "")
}

// Purge asks the configured CDN to drop everything cached for the
// site. Failures are logged, never fatal: stale edge content corrects
// itself on the next rollover.
func (c *Client) Purge(ctx context.Context) {
	if !c.Enabled() {
		return
	}

	body := bytes.NewBufferString(`{"purge_everything":true}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.purgeURL, body)
	if err != nil {
		slog.Error("cdn purge request", "error", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.purgeToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("cdn purge", "error", err)
		return
	}
	defer resp.Body.Close()
	slog.Info("cdn purge sent", "status", resp.StatusCode)
}

// Prewarm requests the given cache key against the configured editorial
// endpoint after PrewarmDelay, authenticated as admin so a missing
// bucket is generated rather than ignored.
func (c *Client) Prewarm(cacheKey string) {
	if c == nil || c.prewarmURL == "" {
		return
	}

	time.Sleep(c.PrewarmDelay)

	target := fmt.Sprintf("%s?cacheKey=%s", c.prewarmURL, url.QueryEscape(cacheKey))
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		slog.Error("cdn prewarm request", "error", err)
		return
	}
	req.Header.Set("X-Shared-Secret", c.sharedSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("cdn prewarm", "error", err)
		return
	}
	defer resp.Body.Close()
	slog.Info("cdn prewarm sent", "key", cacheKey, "status", resp.StatusCode)
}
