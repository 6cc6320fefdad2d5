// Package editorial orchestrates editorial generation: cache-or-create
// resolution, prompt voice selection, text and image generation with
// tiered fallback, and persistence of the resulting artifact.
package editorial

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/zotoio/halt.sh/internal/cachekey"
	"github.com/zotoio/halt.sh/internal/model"
	"github.com/zotoio/halt.sh/internal/navigation"
	"github.com/zotoio/halt.sh/internal/random"
	"github.com/zotoio/halt.sh/pkg/llm"
	"github.com/zotoio/halt.sh/pkg/news"
)

// ArtifactStore is the persistence surface the orchestrator needs.
type ArtifactStore interface {
	Exists(key cachekey.Key) bool
	Read(key cachekey.Key) (model.Artifact, error)
	Write(key cachekey.Key, artifact model.Artifact) error
	ListKeys() ([]cachekey.Key, error)
	WriteImage(urlHash string, data []byte) (string, error)
}

// ArticleSource fetches the explicit-URL debug article.
type ArticleSource interface {
	Fetch(ctx context.Context, articleURL string) (news.Article, error)
}

type Options struct {
	CacheEnabled bool
	CategoryTTL  time.Duration
}

type Service struct {
	store        ArtifactStore
	news         news.Client
	pages        ArticleSource
	text         llm.TextClient
	image        llm.ImageClient
	cacheEnabled bool
	httpClient   *http.Client

	categories *pool[string]
	authors    *pool[Author]

	// group collapses concurrent cold-cache misses for the same key
	// onto a single generation run.
	group singleflight.Group

	now func() time.Time
}

func NewService(store ArtifactStore, newsClient news.Client, pages ArticleSource, text llm.TextClient, image llm.ImageClient, opts Options) *Service {
	s := &Service{
		store:        store,
		news:         newsClient,
		pages:        pages,
		text:         text,
		image:        image,
		cacheEnabled: opts.CacheEnabled,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
	s.categories = newPool(opts.CategoryTTL, fetchCategories(text))
	s.authors = newPool(opts.CategoryTTL, fetchAuthors(text, s.categories))
	return s
}

// Request is one resolved editorial request. Force regenerates even
// when a cached artifact exists; ArticleURL bypasses the news search.
// Both are admin-only and enforced by the handler layer.
type Request struct {
	Key        cachekey.Key
	Force      bool
	ArticleURL string
}

// Editorials serves the artifact for the request's key, generating and
// persisting it on a cache miss. Navigation on the first element is
// refreshed on every call, cached or not.
func (s *Service) Editorials(ctx context.Context, req Request) (model.Artifact, error) {
	if !req.Force && s.cacheEnabled && s.store.Exists(req.Key) {
		artifact, err := s.store.Read(req.Key)
		if err != nil {
			return nil, err
		}
		slog.Info("artifact loaded from cache", "key", req.Key)
		return s.attachNavigation(artifact, req.Key), nil
	}

	v, err, shared := s.group.Do(req.Key.String(), func() (interface{}, error) {
		return s.generate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Info("generation shared with concurrent request", "key", req.Key)
	}
	return s.attachNavigation(v.(model.Artifact), req.Key), nil
}

func (s *Service) generate(ctx context.Context, req Request) (model.Artifact, error) {
	slog.Info("generating editorial", "key", req.Key, "forced", req.Force)

	articles, err := s.sourceArticles(ctx, req)
	if err != nil {
		return nil, err
	}

	artifact := make(model.Artifact, 0, len(articles))
	for _, article := range articles {
		entry, err := s.generateOne(ctx, article)
		if err != nil {
			return nil, err
		}
		artifact = append(artifact, entry)
	}

	// Persist before returning so a navigation snapshot computed right
	// after always includes the just-created artifact.
	if s.cacheEnabled {
		if err := s.store.Write(req.Key, artifact); err != nil {
			return nil, err
		}
	}
	return artifact, nil
}

func (s *Service) sourceArticles(ctx context.Context, req Request) ([]news.Article, error) {
	if req.ArticleURL != "" {
		article, err := s.pages.Fetch(ctx, req.ArticleURL)
		if err != nil {
			return nil, fmt.Errorf("fetching supplied article: %w", err)
		}
		return []news.Article{article}, nil
	}
	articles, err := s.news.FetchTop(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	return articles, nil
}

func (s *Service) generateOne(ctx context.Context, article news.Article) (model.Editorial, error) {
	voice := selectVoice()
	author, err := s.voiceAuthor(ctx, voice)
	if err != nil {
		return model.Editorial{}, fmt.Errorf("selecting author: %w", err)
	}
	variant := random.Pick(variants)

	text, err := s.text.Complete(ctx, buildPrompt(voice, author, article, variant))
	if err != nil {
		return model.Editorial{}, fmt.Errorf("generating editorial text: %w", err)
	}
	text += hiddenByline(author)

	imageURL, err := s.generateImage(ctx, article, author)
	if err != nil {
		return model.Editorial{}, err
	}

	return model.Editorial{
		Article: model.Article{
			UUID:        article.UUID,
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			Source:      article.Source,
			PublishedAt: formatTime(article.PublishedAt),
			ImageURL:    imageURL,
			AuthorAlias: author.Alias,
			GeneratedAt: s.now().UTC().Format(time.RFC3339),
		},
		Editorial: text,
	}, nil
}

func (s *Service) attachNavigation(artifact model.Artifact, key cachekey.Key) model.Artifact {
	if len(artifact) == 0 {
		return artifact
	}
	keys, err := s.store.ListKeys()
	if err != nil {
		slog.Error("listing keys for navigation", "error", err)
		keys = nil
	}
	nav := navigation.Neighbors(keys, key)

	// Callers collapsed onto one generation run all receive the same
	// underlying slice; navigation goes onto a per-caller copy so
	// concurrent responses never write into shared elements.
	out := make(model.Artifact, len(artifact))
	copy(out, artifact)
	out[0].Navigation = &nav
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
