package news

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// PageFetcher resolves an explicit article URL into an Article by
// fetching the page and extracting its title. This is the admin debug
// path that forces one specific article through the pipeline.
type PageFetcher struct {
	httpClient *http.Client
}

func NewPageFetcher() *PageFetcher {
	return &PageFetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *PageFetcher) Fetch(ctx context.Context, articleURL string) (Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return Article{}, fmt.Errorf("page request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("page fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("page fetch: status %d", resp.StatusCode)
	}

	// Titles live in the document head; 64KB is plenty.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return Article{}, fmt.Errorf("page read: %w", err)
	}

	return Article{
		Title:       extractTitle(body, articleURL),
		URL:         articleURL,
		Source:      "direct",
		PublishedAt: time.Now(),
	}, nil
}

func extractTitle(body []byte, fallback string) string {
	m := titlePattern.FindSubmatch(body)
	if m == nil {
		return fallback
	}
	title := html.UnescapeString(strings.TrimSpace(string(m[1])))
	if title == "" {
		return fallback
	}
	return title
}
