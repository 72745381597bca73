package facilitylocator

import (
	"encoding/json"
	"net/http"

	"github.com/agrorede/facility-locator/geo"
)

// handleOptimalLocation accepts the ordered marker list and returns the
// optimal site, total cost, and routes. Client-input failures map to 400,
// no-solution failures to 500, so callers can tell "fix your input" from
// "the network cannot serve this request".
func (s *Server) handleOptimalLocation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var markers []Marker
	if err := json.NewDecoder(r.Body).Decode(&markers); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("malformed request body: " + err.Error()))
		return
	}
	buf, err := s.locator.Solve(markers)
	if err != nil {
		if IsClientError(err) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	s.metrics.CacheEntries.Set(float64(s.locator.cache.Len()))
	_, _ = w.Write(buf)
}

type roadNetworkResponse struct {
	Roads [][]geo.LatLng `json:"roads"`
}

// handleRoadNetwork dumps the base network's edges as geodetic line pairs.
// Debug surface for map overlays.
func (s *Server) handleRoadNetwork(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	g := s.locator.base
	resp := roadNetworkResponse{Roads: [][]geo.LatLng{}}
	seen := make(map[[2]geo.Point]bool)
	for _, u := range g.RoadNodes() {
		for _, e := range g.Neighbors(u) {
			if !e.To.IsRoad() {
				continue
			}
			key := [2]geo.Point{e.From.Point, e.To.Point}
			rkey := [2]geo.Point{e.To.Point, e.From.Point}
			if seen[key] || seen[rkey] {
				continue
			}
			seen[key] = true
			resp.Roads = append(resp.Roads, []geo.LatLng{
				geo.Unproject(e.From.Point),
				geo.Unproject(e.To.Point),
			})
		}
	}
	_ = json.NewEncoder(w).Encode(resp)
}
