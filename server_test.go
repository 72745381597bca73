package facilitylocator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	g := equatorGraph(t, []float64{0, 0.01, 0.02})
	loc := NewLocator(g, testCostModel(), testSearchParams(), 1)
	return NewServer(loc, 0, prometheus.NewRegistry())
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpSrv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestOptimalLocationEndpoint(t *testing.T) {
	s := testServer(t)
	body := `[
		{"type":"supply","coords":{"lat":0,"lng":0},"quantity":10},
		{"type":"demand","coords":{"lat":0,"lng":0.02},"quantity":"8"}
	]`
	rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/optimal-location", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ResponsePayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.TotalCost)
	assert.Len(t, resp.Routes, 2)
}

func TestOptimalLocationRejectsMalformedBody(t *testing.T) {
	s := testServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/optimal-location", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestOptimalLocationRejectsBadMarkers(t *testing.T) {
	s := testServer(t)
	body := `[{"type":"warehouse","coords":{"lat":0,"lng":0},"quantity":1}]`
	rec := serve(s, httptest.NewRequest(http.MethodPost, "/api/optimal-location", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// quantity is mandatory
	body = `[
		{"type":"supply","coords":{"lat":0,"lng":0}},
		{"type":"demand","coords":{"lat":0,"lng":0.01},"quantity":1}
	]`
	rec = serve(s, httptest.NewRequest(http.MethodPost, "/api/optimal-location", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimalLocationMethodNotAllowed(t *testing.T) {
	s := testServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/optimal-location", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoadNetworkEndpoint(t *testing.T) {
	s := testServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/road-network", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp roadNetworkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// three nodes in a line, one entry per undirected edge
	assert.Len(t, resp.Roads, 2)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)
	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.RoadNodes)
	assert.Equal(t, 0, resp.CachedResults)
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t)

	// drive one request through the middleware so the counters exist
	body := `[
		{"type":"supply","coords":{"lat":0,"lng":0},"quantity":1},
		{"type":"demand","coords":{"lat":0,"lng":0.01},"quantity":1}
	]`
	serve(s, httptest.NewRequest(http.MethodPost, "/api/optimal-location", strings.NewReader(body)))

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "locator_requests_total")
}
