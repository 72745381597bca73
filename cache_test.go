package facilitylocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrorede/facility-locator/geo"
)

func TestResultCache(t *testing.T) {
	c := NewResultCache()
	assert.Equal(t, 0, c.Len())

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Put(1, []byte("a"))
	c.Put(2, []byte("b"))
	assert.Equal(t, 2, c.Len())

	buf, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte("a"), buf)

	c.Put(1, []byte("a2"))
	assert.Equal(t, 2, c.Len())
	buf, _ = c.Get(1)
	assert.Equal(t, []byte("a2"), buf)
}

func TestFingerprintDeterministic(t *testing.T) {
	markers := []Marker{
		{Type: "supply", Coords: &geo.LatLng{Lat: -10, Lng: -48}, Quantity: qptr(5)},
		{Type: "mercado", Coords: &geo.LatLng{Lat: -10.5, Lng: -48.2}, Quantity: qptr(3)},
	}
	same := []Marker{
		{Type: "producer", Coords: &geo.LatLng{Lat: -10, Lng: -48}, Quantity: qptr(5)},
		{Type: "demand", Coords: &geo.LatLng{Lat: -10.5, Lng: -48.2}, Quantity: qptr(3)},
	}
	// synonyms canonicalize to the same class, so the keys match
	assert.Equal(t, Fingerprint(markers), Fingerprint(same))
}

func TestFingerprintIsOrderDependent(t *testing.T) {
	a := Marker{Type: "supply", Coords: &geo.LatLng{Lat: 1, Lng: 2}, Quantity: qptr(5)}
	b := Marker{Type: "demand", Coords: &geo.LatLng{Lat: 3, Lng: 4}, Quantity: qptr(3)}

	assert.NotEqual(t, Fingerprint([]Marker{a, b}), Fingerprint([]Marker{b, a}))
}

func TestFingerprintSensitivity(t *testing.T) {
	base := []Marker{{Type: "supply", Coords: &geo.LatLng{Lat: 1, Lng: 2}, Quantity: qptr(5)}}

	moved := []Marker{{Type: "supply", Coords: &geo.LatLng{Lat: 1.0001, Lng: 2}, Quantity: qptr(5)}}
	assert.NotEqual(t, Fingerprint(base), Fingerprint(moved))

	more := []Marker{{Type: "supply", Coords: &geo.LatLng{Lat: 1, Lng: 2}, Quantity: qptr(6)}}
	assert.NotEqual(t, Fingerprint(base), Fingerprint(more))
}

func TestFingerprintToleratesInvalidMarkers(t *testing.T) {
	// markers are fingerprinted before validation, so unknown classes,
	// missing coordinates and missing quantities must still produce a key
	junk := []Marker{{Type: "warehouse", Quantity: qptr(1)}}
	assert.NotEqual(t, Fingerprint(nil), Fingerprint(junk))

	missing := []Marker{{Type: "supply", Coords: &geo.LatLng{Lat: 1, Lng: 2}}}
	zero := []Marker{{Type: "supply", Coords: &geo.LatLng{Lat: 1, Lng: 2}, Quantity: qptr(0)}}
	assert.NotEqual(t, Fingerprint(missing), Fingerprint(zero))
}
