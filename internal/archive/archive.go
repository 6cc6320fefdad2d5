// Package archive paginates stored editorial artifacts newest-first
// for browsing.
package archive

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/zotoio/halt.sh/internal/cachekey"
	"github.com/zotoio/halt.sh/internal/model"
)

const (
	DefaultPageSize = 24
	maxPageSize     = 50
)

var (
	h3Pattern  = regexp.MustCompile(`(?is)<h3[^>]*>(.*?)</h3>`)
	tagPattern = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Entry summarizes one stored artifact for the archive listing.
type Entry struct {
	Key         string `json:"cache_key"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	AuthorAlias string `json:"author_alias"`
	GeneratedAt string `json:"generated_at"`
}

type Page struct {
	Entries []Entry
	HasNext bool
}

// ArtifactStore is the read surface the archive needs.
type ArtifactStore interface {
	ListKeys() ([]cachekey.Key, error)
	Read(key cachekey.Key) (model.Artifact, error)
}

type Index struct {
	store ArtifactStore
}

func NewIndex(store ArtifactStore) *Index {
	return &Index{store: store}
}

// Page returns the requested window over all stored artifacts sorted
// newest-first. A window past the end yields an empty page with
// HasNext false. Only artifacts inside the window are read.
func (ix *Index) Page(pageNumber, pageSize int) (Page, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	keys, err := ix.store.ListKeys()
	if err != nil {
		return Page{}, err
	}
	sort.Slice(keys, func(i, j int) bool {
		return cachekey.Compare(keys[i], keys[j]) > 0
	})

	start := (pageNumber - 1) * pageSize
	if start >= len(keys) {
		return Page{Entries: []Entry{}, HasNext: false}, nil
	}
	end := start + pageSize
	if end > len(keys) {
		end = len(keys)
	}

	entries := make([]Entry, 0, end-start)
	for _, key := range keys[start:end] {
		artifact, err := ix.store.Read(key)
		if err != nil || len(artifact) == 0 {
			slog.Warn("skipping unreadable artifact", "key", key, "error", err)
			continue
		}
		first := artifact[0]
		title := ExtractTitle(first.Editorial)
		if title == "" {
			title = first.Article.Title
		}
		entries = append(entries, Entry{
			Key:         key.String(),
			Title:       title,
			ImageURL:    first.Article.ImageURL,
			AuthorAlias: first.Article.AuthorAlias,
			GeneratedAt: first.Article.GeneratedAt,
		})
	}

	return Page{Entries: entries, HasNext: end < len(keys)}, nil
}

// ExtractTitle pulls the generated headline out of editorial HTML: the
// text of the first h3 element, tags stripped.
func ExtractTitle(editorialHTML string) string {
	m := h3Pattern.FindStringSubmatch(editorialHTML)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(m[1], ""))
}
