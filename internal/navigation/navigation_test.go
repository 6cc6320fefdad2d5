package navigation

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/zotoio/halt.sh/internal/cachekey"
)

func keys(t *testing.T, values ...string) []cachekey.Key {
	t.Helper()
	out := make([]cachekey.Key, 0, len(values))
	for _, v := range values {
		k, ok := cachekey.Parse(v)
		if !ok {
			t.Fatalf("bad test key %q", v)
		}
		out = append(out, k)
	}
	return out
}

func key(t *testing.T, v string) cachekey.Key {
	t.Helper()
	k, ok := cachekey.Parse(v)
	if !ok {
		t.Fatalf("bad test key %q", v)
	}
	return k
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TestNeighbors_MiddleEntry(t *testing.T) {
	all := keys(t, "2024-03-03-99", "2024-03-04-99", "2024-03-05-99")

	nav := Neighbors(all, key(t, "2024-03-04-99"))
	assert.Equal(t, "2024-03-05-99", deref(nav.Next))
	assert.Equal(t, "2024-03-03-99", deref(nav.Previous))
	if nav.Random == nil {
		t.Fatal("expected a random suggestion")
	}
	assert.NotEqual(t, "2024-03-04-99", deref(nav.Random))
}

func TestNeighbors_NewestHasNoNext(t *testing.T) {
	all := keys(t, "2024-03-03-99", "2024-03-04-99", "2024-03-05-99")

	nav := Neighbors(all, key(t, "2024-03-05-99"))
	assert.Equal(t, (*string)(nil), nav.Next)
	assert.Equal(t, "2024-03-04-99", deref(nav.Previous))
}

func TestNeighbors_OldestHasNoPrevious(t *testing.T) {
	all := keys(t, "2024-03-03-99", "2024-03-04-99", "2024-03-05-99")

	nav := Neighbors(all, key(t, "2024-03-03-99"))
	assert.Equal(t, "2024-03-04-99", deref(nav.Next))
	assert.Equal(t, (*string)(nil), nav.Previous)
	if nav.Random == nil {
		t.Fatal("expected a random suggestion at the oldest entry")
	}
}

func TestNeighbors_UnknownCurrent(t *testing.T) {
	all := keys(t, "2024-03-03-99", "2024-03-04-99")

	nav := Neighbors(all, key(t, "2020-01-01-99"))
	assert.Equal(t, (*string)(nil), nav.Next)
	assert.Equal(t, (*string)(nil), nav.Previous)
	assert.Equal(t, (*string)(nil), nav.Random)
}

func TestNeighbors_SingleEntry(t *testing.T) {
	all := keys(t, "2024-03-05-99")

	nav := Neighbors(all, key(t, "2024-03-05-99"))
	assert.Equal(t, (*string)(nil), nav.Next)
	assert.Equal(t, (*string)(nil), nav.Previous)
	assert.Equal(t, (*string)(nil), nav.Random)
}

func TestNeighbors_EmptySet(t *testing.T) {
	nav := Neighbors(nil, key(t, "2024-03-05-99"))
	assert.Equal(t, (*string)(nil), nav.Next)
	assert.Equal(t, (*string)(nil), nav.Previous)
	assert.Equal(t, (*string)(nil), nav.Random)
}

func TestNeighbors_RandomNeverCurrent(t *testing.T) {
	all := keys(t,
		"2024-03-01-99", "2024-03-02-99", "2024-03-03-99",
		"2024-03-04-99", "2024-03-05-99", "2024-03-06-99",
		"2024-03-07-99", "2024-03-08-99",
	)
	current := key(t, "2024-03-04-99")

	for i := 0; i < 100; i++ {
		nav := Neighbors(all, current)
		if nav.Random == nil {
			t.Fatal("expected a random suggestion")
		}
		assert.NotEqual(t, current.String(), deref(nav.Random))
	}
}

func TestNeighbors_HourlyAndDailyInterleave(t *testing.T) {
	// The 99 sentinel sorts after every hour of the same day, so a
	// day's coarse key is newer than its hourly buckets.
	all := keys(t, "2024-03-05-07", "2024-03-05-99", "2024-03-06-07")

	nav := Neighbors(all, key(t, "2024-03-05-99"))
	assert.Equal(t, "2024-03-06-07", deref(nav.Next))
	assert.Equal(t, "2024-03-05-07", deref(nav.Previous))
}
