package editorial

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/zotoio/halt.sh/internal/random"
	"github.com/zotoio/halt.sh/pkg/llm"
)

const categoryPrompt = `give me a list of categories of famous people as a json object containing a single array of strings. the array MUST be named categories`

const authorPrompt = `give me a json object containing a single array that MUST be called 'names' of 30 famous #### names, with each as a json object.
each object should have a field called 'name' containing the real name, and a second
field called 'alias' should contain a playful anagram based alternative name of that persons name.
Each alias anagram should sound as plausible as a persons name as possible
and your entire response MUST be a parsable json document`

// pool is a refreshed-on-expiry value cache shared read-only across
// requests once populated. It holds the fetched values together with
// their fetch time so staleness checks are explicit.
type pool[T any] struct {
	mu        sync.Mutex
	ttl       time.Duration
	fetch     func(ctx context.Context) ([]T, error)
	values    []T
	fetchedAt time.Time
}

func newPool[T any](ttl time.Duration, fetch func(ctx context.Context) ([]T, error)) *pool[T] {
	return &pool[T]{ttl: ttl, fetch: fetch}
}

// pickCtx returns a uniformly chosen value, refreshing the pool first
// when it has expired. A refresh failure with stale values on hand
// serves the stale set rather than failing the request.
func (p *pool[T]) pickCtx(ctx context.Context) (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.values) == 0 || time.Since(p.fetchedAt) > p.ttl {
		values, err := p.fetch(ctx)
		if err != nil {
			if len(p.values) == 0 {
				var zero T
				return zero, err
			}
			slog.Warn("pool refresh failed, serving stale values", "error", err)
		} else {
			p.values = values
			p.fetchedAt = time.Now()
		}
	}
	return random.Pick(p.values), nil
}

// fetchCategories asks the text collaborator for famous-people
// categories, one of which seeds the author pool.
func fetchCategories(text llm.TextClient) func(ctx context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		content, err := text.CompleteJSON(ctx, categoryPrompt)
		if err != nil {
			return nil, fmt.Errorf("fetching categories: %w", err)
		}

		var parsed struct {
			Categories []string `json:"categories"`
		}
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, fmt.Errorf("parsing categories: %w, content: %s", err, content)
		}
		if len(parsed.Categories) == 0 {
			return nil, fmt.Errorf("no categories in response")
		}
		return parsed.Categories, nil
	}
}

// fetchAuthors asks for a pool of personas in the currently selected
// category, each with an anagram-based alias byline.
func fetchAuthors(text llm.TextClient, categories *pool[string]) func(ctx context.Context) ([]Author, error) {
	return func(ctx context.Context) ([]Author, error) {
		category, err := categories.pickCtx(ctx)
		if err != nil {
			return nil, err
		}
		slog.Info("refreshing author pool", "category", category)

		content, err := text.CompleteJSON(ctx, strings.ReplaceAll(authorPrompt, "####", category))
		if err != nil {
			return nil, fmt.Errorf("fetching authors: %w", err)
		}

		var parsed struct {
			Names []Author `json:"names"`
		}
		if err := json.Unmarshal([]byte(content), &parsed); err != nil {
			return nil, fmt.Errorf("parsing authors: %w, content: %s", err, content)
		}
		if len(parsed.Names) == 0 {
			return nil, fmt.Errorf("no authors in response")
		}
		return parsed.Names, nil
	}
}
