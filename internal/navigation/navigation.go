// Package navigation computes chronological neighbor links between the
// stored artifacts, from a point-in-time snapshot of the store's keys.
package navigation

import (
	"sort"

	"github.com/zotoio/halt.sh/internal/cachekey"
	"github.com/zotoio/halt.sh/internal/model"
	"github.com/zotoio/halt.sh/internal/random"
)

// randomWindow bounds how far past the current position the random
// suggestion may land before wrapping to the newest entry.
const randomWindow = 5

// Neighbors locates current within keys sorted newest-first and returns
// its chronological successor, predecessor and a randomized explore
// suggestion. If current is absent, or no other key exists, all links
// are nil.
func Neighbors(keys []cachekey.Key, current cachekey.Key) model.Navigation {
	sorted := make([]cachekey.Key, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return cachekey.Compare(sorted[i], sorted[j]) > 0
	})

	currentIndex := -1
	for i, k := range sorted {
		if k == current {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return model.Navigation{}
	}

	var nav model.Navigation
	if currentIndex > 0 {
		nav.Next = keyRef(sorted[currentIndex-1])
	}
	if currentIndex+1 < len(sorted) {
		nav.Previous = keyRef(sorted[currentIndex+1])
	}

	// The random suggestion looks near the current position and wraps
	// to the newest entry when the draw lands past the end, so one is
	// always offered whenever any other artifact exists.
	rest := append(sorted[:currentIndex:currentIndex], sorted[currentIndex+1:]...)
	if len(rest) > 0 {
		idx := currentIndex + random.Between(0, randomWindow-1)
		if idx >= len(rest) {
			idx = 0
		}
		nav.Random = keyRef(rest[idx])
	}

	return nav
}

func keyRef(k cachekey.Key) *string {
	s := k.String()
	return &s
}
