// Package server exposes the simulation engine over HTTP for browser front
// ends: JSON endpoints for both simulations, UUID-keyed result sessions,
// and a prometheus exporter. Each request runs on its own engine inputs, so
// concurrent users never share simulation state.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	sim "github.com/rajvardhan161/os-lab/sim"
)

// Server serves the simulation API.
type Server struct {
	store *SessionStore
	mux   *http.ServeMux
}

// New creates a Server with an empty session store and all routes mounted.
func New() *Server {
	s := &Server{
		store: NewSessionStore(),
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/paging", s.handlePaging)
	s.mux.HandleFunc("POST /api/frag", s.handleFrag)
	s.mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	s.mux.Handle("GET /metrics", MetricsHandler())
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	logrus.Infof("Serving simulation API on %s", addr)
	return http.ListenAndServe(addr, s)
}

// Store exposes the session store, for the CLI and tests.
func (s *Server) Store() *SessionStore {
	return s.store
}

// PagingRequest is the JSON body of POST /api/paging. References arrive
// already numeric; textual parsing belongs to whichever client collected
// the input.
type PagingRequest struct {
	Refs      []int  `json:"refs"`
	Frames    int    `json:"frames"`
	Algorithm string `json:"algorithm"`
}

// FragRequest is the JSON body of POST /api/frag.
type FragRequest struct {
	Seed         int64 `json:"seed"`
	MemorySize   int   `json:"memory_size"`
	Events       int   `json:"events"`
	MinBlockSize int   `json:"min_block_size"`
	MaxBlockSize int   `json:"max_block_size"`
}

func (s *Server) handlePaging(w http.ResponseWriter, r *http.Request) {
	defer observeDuration(time.Now())

	var req PagingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", sim.ErrMalformedInput))
		return
	}

	refs := make([]sim.PageID, 0, len(req.Refs))
	for i, n := range req.Refs {
		if n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("reference %d (%d) is negative: %w", i, n, sim.ErrMalformedInput))
			return
		}
		refs = append(refs, sim.PageID(n))
	}

	algorithm, err := sim.ParseAlgorithm(req.Algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	timeline, err := sim.Simulate(refs, req.Frames, algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	summary := sim.Summarize(algorithm, timeline)
	SimulationsTotal.WithLabelValues("paging", string(algorithm)).Inc()
	PageFaultsTotal.Add(float64(summary.Faults))

	session := &Session{
		Kind:    "paging",
		Paging:  &PagingResult{Refs: refs, Frames: req.Frames, Timeline: timeline, Algo: algorithm},
		Summary: &summary,
	}
	s.store.Put(session)
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleFrag(w http.ResponseWriter, r *http.Request) {
	defer observeDuration(time.Now())

	var req FragRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", sim.ErrMalformedInput))
		return
	}

	rng := sim.NewPartitionedRNG(sim.NewReplayKey(req.Seed)).ForSubsystem(sim.SubsystemFragmentation)
	snapshots, err := sim.GenerateTimeline(sim.FragmentationConfig{
		MemorySize:   req.MemorySize,
		Events:       req.Events,
		MinBlockSize: req.MinBlockSize,
		MaxBlockSize: req.MaxBlockSize,
	}, rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	SimulationsTotal.WithLabelValues("frag", "first-fit").Inc()

	stats := sim.ComputeFragStats(snapshots[len(snapshots)-1])
	session := &Session{
		Kind:      "frag",
		Snapshots: snapshots,
		FragStats: &stats,
	}
	s.store.Put(session)
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session := s.store.Get(r.PathValue("id"))
	if session == nil {
		writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func observeDuration(start time.Time) {
	RequestDuration.Observe(time.Since(start).Seconds())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	logrus.Debugf("request rejected: %v", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
