package facilitylocator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agrorede/facility-locator/geo"
)

// Marker is one entry of the request payload: a supply or demand point in
// geodetic coordinates. Items are arbitrary tags carried for the caller's
// benefit; the solver ignores them. Quantity accepts a JSON number or a
// numeric string; the field must be present, so an absent quantity is
// distinguishable from an explicit zero.
type Marker struct {
	Type     string      `json:"type" validate:"required"`
	Coords   *geo.LatLng `json:"coords" validate:"required"`
	Items    []string    `json:"items"`
	Quantity *Quantity   `json:"quantity" validate:"required"`
}

// Quantity is a non-negative integer that tolerates being sent as a string.
type Quantity int

// UnmarshalJSON accepts 10, "10" and similar. Negative values are rejected
// during marker parsing so the error can name the offending marker.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("quantity must be an integer or numeric string, got %s", string(b))
	}
	*q = Quantity(v)
	return nil
}

// PointClass is the closed two-variant marker classification. Raw class
// strings are resolved exactly once, at the input boundary; the solver never
// inspects a raw string again.
type PointClass int

const (
	ClassSupply PointClass = iota
	ClassDemand
)

// String returns the normalized class name.
func (c PointClass) String() string {
	if c == ClassSupply {
		return "supply"
	}
	return "demand"
}

// normalizeClass maps a raw marker type and its accepted synonyms onto a
// PointClass.
func normalizeClass(raw string) (PointClass, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "supply", "producer", "produtor":
		return ClassSupply, nil
	case "demand", "market", "mercado", "buyer":
		return ClassDemand, nil
	}
	return 0, fmt.Errorf("unknown type %q: use a supply or demand synonym", raw)
}

// canonicalClass is normalizeClass for fingerprinting: unknown classes pass
// through lowercased so a cache key exists even for inputs that will fail
// validation.
func canonicalClass(raw string) string {
	if c, err := normalizeClass(raw); err == nil {
		return c.String()
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// SupplyPoint ships Quantity units into the network.
type SupplyPoint struct {
	ID       string
	Coord    geo.Point
	Quantity int
}

// DemandPoint absorbs Demand units from the network.
type DemandPoint struct {
	ID     string
	Coord  geo.Point
	Demand int
}

var markerValidator = validator.New()

// parseMarkers validates and normalizes the ordered marker list into supply
// and demand points with projected coordinates. Point ids encode the
// normalized class and the marker's position in the request, so the same
// ordered input always yields the same ids. Validation failures abort the
// request before any graph work, naming the offending marker.
func parseMarkers(markers []Marker) ([]SupplyPoint, []DemandPoint, error) {
	var supplies []SupplyPoint
	var demands []DemandPoint
	for i, m := range markers {
		if err := markerValidator.Struct(m); err != nil {
			return nil, nil, fmt.Errorf("%w %d: %v", ErrInvalidMarker, i, err)
		}
		class, err := normalizeClass(m.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("%w %d: %v", ErrInvalidMarker, i, err)
		}
		if *m.Quantity < 0 {
			return nil, nil, fmt.Errorf("%w %d: quantity must be >= 0", ErrInvalidMarker, i)
		}
		id := fmt.Sprintf("%s-%d", class, i)
		coord := geo.Project(*m.Coords)
		if class == ClassSupply {
			supplies = append(supplies, SupplyPoint{ID: id, Coord: coord, Quantity: int(*m.Quantity)})
		} else {
			demands = append(demands, DemandPoint{ID: id, Coord: coord, Demand: int(*m.Quantity)})
		}
	}
	if len(supplies) == 0 || len(demands) == 0 {
		return nil, nil, ErrInsufficientData
	}
	return supplies, demands, nil
}
