package random

import (
	"crypto/rand"
	"encoding/binary"
)

// uint64n returns a uniform value in [0, n) using rejection sampling
// over crypto/rand so no modulo bias is introduced.
func uint64n(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	max := ^uint64(0) - (^uint64(0) % n)
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand failing means the platform entropy source is
			// broken; nothing sensible can be served at that point.
			panic("random: reading entropy: " + err.Error())
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < max {
			return v % n
		}
	}
}

// Intn returns a uniform value in [0, n). n <= 0 returns 0.
func Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64n(uint64(n)))
}

// Between returns a uniform value in [min, max] inclusive.
func Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + Intn(max-min+1)
}

// Chance reports true with probability p (clamped to [0, 1]).
func Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return Intn(10000) < int(p*10000)
}

// Pick returns a uniformly chosen element of values.
// The zero value is returned for an empty slice.
func Pick[T any](values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[Intn(len(values))]
}
