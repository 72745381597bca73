package facilitylocator

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status        string `json:"status"`
	RoadNodes     int    `json:"road_nodes"`
	CachedResults int    `json:"cached_results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:        "ok",
		RoadNodes:     len(s.locator.base.RoadNodes()),
		CachedResults: s.locator.cache.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
