package cachekey

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestCanonical_Daily(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05-99", Canonical(now, Daily).String())
}

func TestCanonical_Hourly(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05-07", Canonical(now, Hourly).String())
}

func TestCanonical_ZeroPadding(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02-03", Canonical(now, Hourly).String())
}

func TestParse_Valid(t *testing.T) {
	cases := []string{
		"2024-03-05-99",
		"2024-03-05-07",
		"2024-03-05-00",
		"2024-03-05-07-1709626800123",
	}
	for _, s := range cases {
		key, ok := Parse(s)
		if !ok {
			t.Fatalf("expected %q to parse", s)
		}
		assert.Equal(t, s, key.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"2024-03-05",
		"2024-03-05-7",
		"2024-3-05-07",
		"2024-03-05-077",
		"2024-03-05-07-170962680012",
		"2024-03-05-07-17096268001234",
		"2024-03-05-07-1709626800123x",
		"x2024-03-05-07",
		"../2024-03-05-07",
	}
	for _, s := range cases {
		if Valid(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestParse_FineFlag(t *testing.T) {
	key, ok := Parse("2024-03-05-07-1709626800123")
	assert.Equal(t, true, ok)
	assert.Equal(t, true, key.Fine())

	key, ok = Parse("2024-03-05-07")
	assert.Equal(t, true, ok)
	assert.Equal(t, false, key.Fine())
}

func TestParseFilename_RoundTrip(t *testing.T) {
	for _, s := range []string{"2024-03-05-99", "2024-03-05-07-1709626800123"} {
		key, ok := ParseFilename(s + ".json")
		if !ok {
			t.Fatalf("expected %q.json to parse", s)
		}
		assert.Equal(t, s, key.String())
	}
}

func TestParseFilename_SkipsNonArtifacts(t *testing.T) {
	for _, name := range []string{"images", "notes.txt", "2024-03-05-99", "2024-03-05-99.json.bak"} {
		if _, ok := ParseFilename(name); ok {
			t.Fatalf("expected %q to be skipped", name)
		}
	}
}

func TestNext(t *testing.T) {
	now := time.Date(2024, 3, 5, 23, 10, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-06-00", Next(now, Hourly).String())
	assert.Equal(t, "2024-03-06-99", Next(now, Daily).String())
}

func TestCompare_Chronological(t *testing.T) {
	older, _ := Parse("2024-03-05-07")
	newer, _ := Parse("2024-03-05-08")
	day, _ := Parse("2024-03-05-99")

	if Compare(older, newer) >= 0 {
		t.Fatal("expected 07 bucket to order before 08")
	}
	if Compare(newer, day) >= 0 {
		t.Fatal("expected hourly bucket to order before the day sentinel")
	}
}

func TestResolve_FallbackToCanonical(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	never := func(Key) bool { return false }

	assert.Equal(t, "2024-03-05-07", Resolve("", false, never, now, Hourly).String())
	assert.Equal(t, "2024-03-05-07", Resolve("2024-03-05-7", false, never, now, Hourly).String())
	assert.Equal(t, "2024-03-05-07", Resolve("garbage", true, never, now, Hourly).String())
}

func TestResolve_AdminMayAddressAnyKey(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	never := func(Key) bool { return false }

	got := Resolve("2020-01-01-99", true, never, now, Hourly)
	assert.Equal(t, "2020-01-01-99", got.String())

	got = Resolve("2024-03-05-07-1709626800123", true, never, now, Hourly)
	assert.Equal(t, "2024-03-05-07-1709626800123", got.String())
}

func TestResolve_NonAdminNeedsMaterializedKey(t *testing.T) {
	now := time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)
	stored := map[string]bool{"2024-03-04-99": true}
	exists := func(k Key) bool { return stored[k.String()] }

	got := Resolve("2024-03-04-99", false, exists, now, Hourly)
	assert.Equal(t, "2024-03-04-99", got.String())

	got = Resolve("2020-01-01-99", false, exists, now, Hourly)
	assert.Equal(t, "2024-03-05-07", got.String())
}
