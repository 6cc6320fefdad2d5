package archive

import (
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/zotoio/halt.sh/internal/cachekey"
	"github.com/zotoio/halt.sh/internal/model"
	"github.com/zotoio/halt.sh/internal/store"
)

func populatedStore(t *testing.T, days int) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir())
	assert.Equal(t, nil, err)

	for i := 1; i <= days; i++ {
		key, ok := cachekey.Parse(fmt.Sprintf("2024-03-%02d-99", i))
		if !ok {
			t.Fatalf("bad key for day %d", i)
		}
		artifact := model.Artifact{{
			Article: model.Article{
				Title:       fmt.Sprintf("source title %d", i),
				ImageURL:    fmt.Sprintf("/cache/images/%064d.png", i),
				AuthorAlias: "someone",
				GeneratedAt: fmt.Sprintf("2024-03-%02dT12:00:00Z", i),
			},
			Editorial: fmt.Sprintf("<h3 style='text-align:left'>Witty headline %d</h3><p>body</p>", i),
		}}
		assert.Equal(t, nil, st.Write(key, artifact))
	}
	return st
}

func TestPage_AllFitOnOnePage(t *testing.T) {
	ix := NewIndex(populatedStore(t, 10))

	page, err := ix.Page(1, 24)
	assert.Equal(t, nil, err)
	assert.Equal(t, 10, len(page.Entries))
	assert.Equal(t, false, page.HasNext)
	// newest first
	assert.Equal(t, "2024-03-10-99", page.Entries[0].Key)
	assert.Equal(t, "Witty headline 10", page.Entries[0].Title)
	assert.Equal(t, "2024-03-01-99", page.Entries[9].Key)
}

func TestPage_Windows(t *testing.T) {
	ix := NewIndex(populatedStore(t, 7))

	first, err := ix.Page(1, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(first.Entries))
	assert.Equal(t, true, first.HasNext)

	last, err := ix.Page(3, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(last.Entries))
	assert.Equal(t, false, last.HasNext)
	assert.Equal(t, "2024-03-01-99", last.Entries[0].Key)
}

func TestPage_PastTheEnd(t *testing.T) {
	ix := NewIndex(populatedStore(t, 2))

	page, err := ix.Page(5, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(page.Entries))
	assert.Equal(t, false, page.HasNext)
}

func TestPage_SizeClamped(t *testing.T) {
	ix := NewIndex(populatedStore(t, 60))

	page, err := ix.Page(1, 500)
	assert.Equal(t, nil, err)
	assert.Equal(t, 50, len(page.Entries))
	assert.Equal(t, true, page.HasNext)
}

func TestPage_DefaultsForBadInput(t *testing.T) {
	ix := NewIndex(populatedStore(t, 3))

	page, err := ix.Page(0, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(page.Entries))
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Hello World",
		ExtractTitle("<h3 style='x'>Hello <b>World</b></h3><p>rest</p>"))
	assert.Equal(t, "", ExtractTitle("<p>no headline</p>"))
}
