package facilitylocator

import (
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ResultCache memoizes full response payloads by request fingerprint. It has
// no eviction or expiry: entries live for the process lifetime. The cache is
// shared across concurrent requests with no per-key singleflight, so two
// identical requests in flight may both compute the pipeline; the payload is
// immutable once built, so the last write winning is benign.
type ResultCache struct {
	mu      sync.Mutex
	entries map[uint64][]byte
}

// NewResultCache returns an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{entries: make(map[uint64][]byte)}
}

// Get returns the cached payload for key, if any.
func (c *ResultCache) Get(key uint64) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	buf, ok := c.entries[key]
	return buf, ok
}

// Put stores the payload for key.
func (c *ResultCache) Put(key uint64, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = payload
}

// Len returns the number of cached responses.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fingerprint digests the canonicalized marker list: normalized class,
// geodetic coordinates and quantity per marker, in the given order. The key
// is order-dependent: reordering the same logical marker set produces a
// different fingerprint and recomputes.
func Fingerprint(markers []Marker) uint64 {
	h := xxhash.New()
	for _, m := range markers {
		_, _ = h.WriteString(canonicalClass(m.Type))
		_, _ = h.WriteString("|")
		if m.Coords != nil {
			_, _ = h.WriteString(strconv.FormatFloat(m.Coords.Lat, 'g', -1, 64))
			_, _ = h.WriteString(",")
			_, _ = h.WriteString(strconv.FormatFloat(m.Coords.Lng, 'g', -1, 64))
		}
		_, _ = h.WriteString("|")
		if m.Quantity != nil {
			_, _ = h.WriteString(strconv.Itoa(int(*m.Quantity)))
		}
		_, _ = h.WriteString(";")
	}
	return h.Sum64()
}
