package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/katalvlaran/segpath/astar"
	"github.com/katalvlaran/segpath/bfs"
	"github.com/katalvlaran/segpath/core"
	"github.com/katalvlaran/segpath/geo"
	"github.com/katalvlaran/segpath/internal/config"
	"github.com/katalvlaran/segpath/spatial"
)

// FormatGeoJSON is the ?format= value selecting a GeoJSON response.
const FormatGeoJSON = "geojson"

const shutdownGrace = 5 * time.Second

// Server plans paths for HTTP clients. It holds only immutable configuration,
// so one Server serves concurrent requests without locking.
type Server struct {
	cfg    config.Config
	policy astar.RelaxPolicy
	log    *log.Logger
	cors   *cors
}

// New validates cfg and returns a Server. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Server{
		cfg:    cfg,
		policy: cfg.Policy(),
		log:    logger,
		cors:   newCORS(cfg.AllowedOrigins),
	}, nil
}

// Handler returns the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	// both spellings; the mux would otherwise redirect POST /astar with a 301
	mux.HandleFunc("/astar/", s.handleAStar)
	mux.HandleFunc("/astar", s.handleAStar)

	return s.cors.wrap(mux)
}

// Run listens on the configured address until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     s.log,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Printf("listening on %s (policy %s, snap %t)", s.cfg.Addr, s.policy, s.cfg.Snap)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.log.Printf("shutting down")
		return srv.Shutdown(sctx)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, "application/json", info)
}

func (s *Server) handleAStar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q, status, err := s.decode(w, r)
	if err != nil {
		s.log.Printf("astar: rejected request: %v", err)
		http.Error(w, err.Error(), status)
		return
	}

	edges := q.Edges
	start, goal := q.Start, q.Goal
	adj := core.BuildAdjacency(edges)

	snap := s.cfg.Snap
	if q.Snap != nil {
		snap = *q.Snap
	}
	if snap {
		start, goal = s.snap(adj, start, goal)
	}

	res, err := astar.Search(adj, start, goal, astar.WithRelaxPolicy(s.policy))
	switch {
	case errors.Is(err, astar.ErrNodeNotInGraph):
		s.log.Printf("astar: %d segments, %s -> %s: %v", len(edges), start, goal, err)
		s.writeJSON(w, "application/json", PathResponse{Movement: ErrorBody{Error: MsgNodeNotInGraph}})
		return
	case errors.Is(err, astar.ErrNoPathFound):
		s.log.Printf("astar: %d segments, %s -> %s: %v (%d components)",
			len(edges), start, goal, err, len(bfs.Components(adj)))
		s.writeJSON(w, "application/json", PathResponse{Movement: ErrorBody{Error: MsgNoPathFound}})
		return
	case err != nil:
		s.log.Printf("astar: %d segments, %s -> %s: %v", len(edges), start, goal, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.log.Printf("astar: %d segments, %s -> %s: %d hops, %d expanded",
		len(edges), start, goal, res.Hops, res.Expanded)

	if r.URL.Query().Get("format") == FormatGeoJSON {
		s.writeJSON(w, "application/geo+json", geo.Collection(res.Path, edges))
		return
	}
	s.writeJSON(w, "application/json", PathResponse{Movement: Movement(res.Path)})
}

// decode parses, limits and validates the request body. On failure it returns the HTTP status to send.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*Query, int, error) {
	body := r.Body
	if s.cfg.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}

	var req PathRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var (
			tooLarge *http.MaxBytesError
			typeErr  *json.UnmarshalTypeError
		)
		switch {
		case errors.As(err, &tooLarge):
			return nil, http.StatusRequestEntityTooLarge, errors.New("request body too large")
		case errors.As(err, &typeErr):
			return nil, http.StatusUnprocessableEntity, errors.New("invalid field " + typeErr.Field + ": expected " + typeErr.Type.String())
		default:
			return nil, http.StatusBadRequest, errors.New("invalid request body: " + err.Error())
		}
	}

	if req.AvailablePath != nil && s.cfg.MaxEdges > 0 && len(*req.AvailablePath) > s.cfg.MaxEdges {
		return nil, http.StatusRequestEntityTooLarge, errors.New("too many segments in available_path")
	}
	q, err := req.Query()
	if err != nil {
		return nil, http.StatusUnprocessableEntity, err
	}

	return q, 0, nil
}

// snap moves start and goal onto the nearest vertices when they are not vertices already.
func (s *Server) snap(adj core.Adjacency, start, goal core.Point) (core.Point, core.Point) {
	if adj.HasVertex(start) && adj.HasVertex(goal) {
		return start, goal
	}
	idx := spatial.NewVertexIndex(adj)
	if p, ok := spatial.Snap(adj, idx, start); ok && p != start {
		s.log.Printf("astar: snapped start %s to %s", start, p)
		start = p
	}
	if p, ok := spatial.Snap(adj, idx, goal); ok && p != goal {
		s.log.Printf("astar: snapped goal %s to %s", goal, p)
		goal = p
	}

	return start, goal
}

func (s *Server) writeJSON(w http.ResponseWriter, contentType string, v interface{}) {
	w.Header().Set("Content-Type", contentType)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("write response: %v", err)
	}
}
