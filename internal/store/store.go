// Package store persists editorial artifacts as flat JSON files, one
// per cache key, plus the downloaded images they reference.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/zotoio/halt.sh/internal/cachekey"
	"github.com/zotoio/halt.sh/internal/model"
)

// ErrNotFound is returned when no artifact exists at the requested key.
var ErrNotFound = errors.New("artifact not found")

var imageNamePattern = regexp.MustCompile(`^[0-9a-f]{64}\.png$`)

type Store struct {
	dir string
}

// New opens the artifact store rooted at dir, eagerly creating the
// directory and its images/ subdirectory so write failures surface at
// startup instead of mid-request.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir is the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) artifactPath(key cachekey.Key) string {
	return filepath.Join(s.dir, key.Filename())
}

// Exists reports whether an artifact is stored at key.
func (s *Store) Exists(key cachekey.Key) bool {
	_, err := os.Stat(s.artifactPath(key))
	return err == nil
}

// Read loads the artifact stored at key.
func (s *Store) Read(key cachekey.Key) (model.Artifact, error) {
	data, err := os.ReadFile(s.artifactPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading artifact %s: %w", key, err)
	}

	var artifact model.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decoding artifact %s: %w", key, err)
	}
	return artifact, nil
}

// Write stores the artifact at key, fully replacing any existing
// content. Last write wins under concurrent generation.
func (s *Store) Write(key cachekey.Key, artifact model.Artifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("encoding artifact %s: %w", key, err)
	}
	if err := os.WriteFile(s.artifactPath(key), data, 0o644); err != nil {
		return fmt.Errorf("writing artifact %s: %w", key, err)
	}
	return nil
}

// ListKeys returns the keys of all stored artifacts in directory order.
// Entries that do not parse as artifact filenames are skipped.
func (s *Store) ListKeys() ([]cachekey.Key, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing cache dir: %w", err)
	}

	var keys []cachekey.Key
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if key, ok := cachekey.ParseFilename(entry.Name()); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// WriteImage stores image bytes under the sha256 hex of their source
// URL and returns the public path the artifact should reference.
func (s *Store) WriteImage(urlHash string, data []byte) (string, error) {
	name := urlHash + ".png"
	if !imageNamePattern.MatchString(name) {
		return "", fmt.Errorf("invalid image hash %q", urlHash)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "images", name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing image %s: %w", name, err)
	}
	return "/cache/images/" + name, nil
}

// ImagePath resolves a requested image filename to its on-disk path.
// The name is validated against the stored naming scheme so path
// traversal and non-image files are rejected outright.
func (s *Store) ImagePath(name string) (string, bool) {
	if !imageNamePattern.MatchString(name) {
		return "", false
	}
	path := filepath.Join(s.dir, "images", name)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
