package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestPageFetcher_ExtractsTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title> AI beats humans &amp; wins </title></head><body></body></html>`))
	}))
	defer srv.Close()

	article, err := NewPageFetcher().Fetch(context.Background(), srv.URL)
	assert.Equal(t, nil, err)
	assert.Equal(t, "AI beats humans & wins", article.Title)
	assert.Equal(t, srv.URL, article.URL)
	assert.Equal(t, "direct", article.Source)
}

func TestPageFetcher_MissingTitleFallsBackToURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>no head here</body></html>`))
	}))
	defer srv.Close()

	article, err := NewPageFetcher().Fetch(context.Background(), srv.URL)
	assert.Equal(t, nil, err)
	assert.Equal(t, srv.URL, article.Title)
}

func TestPageFetcher_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewPageFetcher().Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
