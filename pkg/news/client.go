package news

import (
	"context"
	"time"
)

type Article struct {
	UUID        string
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
	ImageURL    string
}

// Client fetches candidate articles for editorial generation.
type Client interface {
	FetchTop(ctx context.Context) ([]Article, error)
	Name() string
}
