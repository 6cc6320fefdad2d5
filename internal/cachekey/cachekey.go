// Package cachekey derives, validates and parses the time-bucketed keys
// that editorial artifacts are stored under.
//
// A key has the shape YYYY-MM-DD-BB, where BB is an hour (00-23) for
// hourly frequency or the sentinel 99 meaning "whole day" for daily
// frequency. An optional 13-digit millisecond suffix addresses one
// specific generation run within a bucket and is only ever minted by
// admin tooling. All fields are fixed-width and zero-padded, so
// lexicographic order on the string form is chronological order.
package cachekey

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Frequency selects the bucket granularity of canonical keys.
type Frequency string

const (
	Daily  Frequency = "daily"
	Hourly Frequency = "hourly"

	// DayBucket is the bucket value of a daily key.
	DayBucket = "99"
)

var keyPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(\d{2})(?:-(\d{13}))?$`)

var filenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(\d{2})(?:-(\d{13}))?\.json$`)

// Key is a parsed, known-valid cache key.
type Key struct {
	Date   string // YYYY-MM-DD
	Bucket string // 00-23 or 99
	Stamp  string // optional 13-digit millisecond suffix
}

func (k Key) String() string {
	if k.Stamp != "" {
		return k.Date + "-" + k.Bucket + "-" + k.Stamp
	}
	return k.Date + "-" + k.Bucket
}

// Fine reports whether the key addresses a single generation run
// rather than a bucket's canonical slot.
func (k Key) Fine() bool {
	return k.Stamp != ""
}

// IsZero reports whether the key is the zero value.
func (k Key) IsZero() bool {
	return k.Date == "" && k.Bucket == "" && k.Stamp == ""
}

// Filename is the artifact filename the key maps to.
func (k Key) Filename() string {
	return k.String() + ".json"
}

// Parse returns the parsed key and true iff s is well-formed.
func Parse(s string) (Key, bool) {
	m := keyPattern.FindStringSubmatch(s)
	if m == nil {
		return Key{}, false
	}
	return Key{Date: m[1], Bucket: m[2], Stamp: m[3]}, true
}

// Valid reports whether s is a well-formed key.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// ParseFilename extracts a key from a stored artifact filename.
// Non-artifact files return false and are skipped by callers.
func ParseFilename(name string) (Key, bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return Key{}, false
	}
	return Key{Date: m[1], Bucket: m[2], Stamp: m[3]}, true
}

// Canonical derives the key every non-admin request within the current
// bucket collapses onto.
func Canonical(now time.Time, freq Frequency) Key {
	k := Key{Date: now.Format("2006-01-02")}
	if freq == Hourly {
		k.Bucket = fmt.Sprintf("%02d", now.Hour())
	} else {
		k.Bucket = DayBucket
	}
	return k
}

// Next is the canonical key of the bucket that follows now, used as the
// pre-warm target after an admin regeneration.
func Next(now time.Time, freq Frequency) Key {
	if freq == Hourly {
		return Canonical(now.Add(time.Hour), freq)
	}
	return Canonical(now.AddDate(0, 0, 1), freq)
}

// Compare orders keys chronologically: negative when a is older than b.
// The fixed-width zero-padded fields make this plain string comparison.
func Compare(a, b Key) int {
	return strings.Compare(a.String(), b.String())
}

// Resolve turns an optionally supplied key into the key the request is
// served under.
//
// A missing or malformed supplied value falls back to the canonical key
// for now. Admins may address any well-formed key, materialized or not,
// which is how debug and backfill buckets get generated on demand.
// Non-admin callers may only address keys whose artifact already
// exists; anything else falls back to canonical.
func Resolve(supplied string, isAdmin bool, exists func(Key) bool, now time.Time, freq Frequency) Key {
	canonical := Canonical(now, freq)
	if supplied == "" {
		return canonical
	}

	key, ok := Parse(supplied)
	if !ok {
		return canonical
	}
	if isAdmin || exists(key) {
		return key
	}
	return canonical
}
