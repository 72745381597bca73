package facilitylocator

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Server is the HTTP surface of the locator.
type Server struct {
	locator *Locator
	metrics *Metrics
	httpSrv *http.Server
}

// NewServer wires the router, handlers and metrics for the given locator.
func NewServer(locator *Locator, port int, reg prometheus.Registerer) *Server {
	s := &Server{
		locator: locator,
		metrics: NewMetrics(reg),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/optimal-location", s.metrics.Middleware("optimal-location", s.handleOptimalLocation)).Methods(http.MethodPost)
	r.HandleFunc("/api/road-network", s.metrics.Middleware("road-network", s.handleRoadNetwork)).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Searches run to completion regardless of caller disconnection, and
		// long generation counts take a while; the write timeout has to cover
		// the full pipeline.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.httpSrv.Addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
