package facilitylocator

import (
	"encoding/json"
	"fmt"

	"github.com/agrorede/facility-locator/geo"
	"github.com/agrorede/facility-locator/network"
)

// RoutePoint is one geodetic route coordinate, serialized as a [lat, lng]
// pair array.
type RoutePoint [2]float64

// ResponsePayload is the wire shape of a successful request: the optimal
// site in geodetic coordinates, the total weighted transport cost as a
// decimal string with two fraction digits, and one route per reachable
// supply/demand point (unreachable points are omitted, not errors). Route
// points are [lat, lng] pairs, not objects.
type ResponsePayload struct {
	OptimalLocation geo.LatLng     `json:"optimal_location"`
	TotalCost       string         `json:"total_cost"`
	Routes          [][]RoutePoint `json:"routes"`
}

func buildResponse(site network.Vertex, cost float64, routes [][]geo.LatLng) []byte {
	pairs := make([][]RoutePoint, 0, len(routes))
	for _, route := range routes {
		pts := make([]RoutePoint, 0, len(route))
		for _, ll := range route {
			pts = append(pts, RoutePoint{ll.Lat, ll.Lng})
		}
		pairs = append(pairs, pts)
	}
	payload := ResponsePayload{
		OptimalLocation: geo.Unproject(site.Point),
		TotalCost:       fmt.Sprintf("%.2f", cost),
		Routes:          pairs,
	}
	b, _ := json.Marshal(payload)
	return b
}

type errorPayload struct {
	Error string `json:"error"`
}

func buildErrorPayload(msg string) []byte {
	b, _ := json.Marshal(errorPayload{Error: msg})
	return b
}
