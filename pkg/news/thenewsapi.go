package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zotoio/halt.sh/internal/random"
)

// defaultKeywords is the standing search pool for generative-AI news.
var defaultKeywords = []string{
	"chatgpt", "midjourney", "dall-e", "openai", "genai", "generative ai", "copilot",
}

type TheNewsAPIClient struct {
	apiKey       string
	keywords     []string
	pageSize     int
	pageCount    int
	singleRandom bool
	baseURL      string
	httpClient   *http.Client
	now          func() time.Time
}

func NewTheNewsAPIClient(apiKey string, pageSize, pageCount int, singleRandom bool) *TheNewsAPIClient {
	return &TheNewsAPIClient{
		apiKey:       apiKey,
		keywords:     defaultKeywords,
		pageSize:     pageSize,
		pageCount:    pageCount,
		singleRandom: singleRandom,
		baseURL:      "https://api.thenewsapi.com/v1/news/top",
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
}

func (c *TheNewsAPIClient) Name() string {
	return "TheNewsAPI"
}

// FetchTop pulls the configured number of result pages, newest first.
// Weekends triple the page count to compensate for the thinner news
// cycle, and SingleRandom mode collapses the whole set to one uniformly
// chosen article.
func (c *TheNewsAPIClient) FetchTop(ctx context.Context) ([]Article, error) {
	pages := c.pageCount
	if pages < 1 {
		pages = 1
	}
	if weekday := c.now().Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		pages = pages * 3
	}

	var articles []Article
	for page := 1; page <= pages; page++ {
		batch, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		articles = append(articles, batch...)
	}

	if len(articles) == 0 {
		return nil, fmt.Errorf("thenewsapi: no articles returned")
	}
	if c.singleRandom {
		articles = []Article{random.Pick(articles)}
	}
	return articles, nil
}

func (c *TheNewsAPIClient) fetchPage(ctx context.Context, page int) ([]Article, error) {
	params := url.Values{}
	params.Set("search", strings.Join(c.keywords, "|"))
	params.Set("sort", "published_at")
	params.Set("api_token", c.apiKey)
	params.Set("language", "en")
	params.Set("limit", strconv.Itoa(c.pageSize))
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("thenewsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thenewsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thenewsapi fetch: status %d", resp.StatusCode)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("thenewsapi decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Data))
	for _, item := range raw.Data {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}
		articles = append(articles, Article{
			UUID:        item.UUID,
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Source:      item.Source,
			PublishedAt: publishedAt,
			ImageURL:    item.ImageURL,
		})
	}
	return articles, nil
}

type newsAPIResponse struct {
	Data []newsAPIArticle `json:"data"`
}

type newsAPIArticle struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	ImageURL    string `json:"image_url"`
}
