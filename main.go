package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jsnanigans/vardiff/pkg/vardiff"
)

// CompareRequest carries a base/variant text pair for /compare.
type CompareRequest struct {
	Base    string `json:"base"`
	Variant string `json:"variant"`
}

// CompareResponse is the word diff plus a drift score.
type CompareResponse struct {
	Tokens     []vardiff.Token `json:"tokens"`
	Similarity float64         `json:"similarity"`
}

// MovesRequest carries two bullet-id orderings for /moves.
type MovesRequest struct {
	Base    []string `json:"base"`
	Variant []string `json:"variant"`
}

// MovesResponse maps moved ids to their original 1-based rank.
type MovesResponse struct {
	Moves map[string]int `json:"moves"`
}

// FieldUpdateRequest carries new content for a named resume field.
type FieldUpdateRequest struct {
	Field   string `json:"field"`
	Content string `json:"content"`
}

// server diffs incoming field updates against the last content it saw for
// that field, so a client editing a resume gets the delta without resending
// the previous version.
type server struct {
	log *zap.Logger

	mu     sync.RWMutex
	fields map[string]string
}

func newServer(log *zap.Logger) *server {
	return &server{
		log:    log,
		fields: make(map[string]string),
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/compare", s.handleCompare)
	mux.HandleFunc("/moves", s.handleMoves)
	mux.HandleFunc("/update", s.handleFieldUpdate)
	return mux
}

// decodePost enforces POST+JSON and decodes the body into dst. It writes
// the error response itself and reports whether the caller should continue.
func decodePost(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return false
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	var req CompareRequest
	if !decodePost(w, r, &req) {
		return
	}

	tokens := vardiff.WordDiff(req.Base, req.Variant)
	resp := CompareResponse{
		Tokens:     tokens,
		Similarity: vardiff.Similarity(req.Base, req.Variant),
	}
	s.log.Info("compared texts",
		zap.String("request_id", reqID),
		zap.Int("tokens", len(tokens)),
		zap.Float64("similarity", resp.Similarity))

	writeJSON(w, resp)
}

func (s *server) handleMoves(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	var req MovesRequest
	if !decodePost(w, r, &req) {
		return
	}

	moves := vardiff.Moves(req.Base, req.Variant)
	s.log.Info("computed bullet moves",
		zap.String("request_id", reqID),
		zap.Int("moved", len(moves)))

	writeJSON(w, MovesResponse{Moves: moves})
}

func (s *server) handleFieldUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	var req FieldUpdateRequest
	if !decodePost(w, r, &req) {
		return
	}
	if req.Field == "" {
		http.Error(w, "Field cannot be empty", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	previous, seen := s.fields[req.Field]
	s.fields[req.Field] = req.Content
	s.mu.Unlock()

	// First sight of a field diffs against the empty string, so the whole
	// content comes back as one added run.
	tokens := vardiff.WordDiff(previous, req.Content)
	s.log.Info("field updated",
		zap.String("request_id", reqID),
		zap.String("field", req.Field),
		zap.Bool("first_seen", !seen),
		zap.Int("tokens", len(tokens)))

	writeJSON(w, CompareResponse{
		Tokens:     tokens,
		Similarity: vardiff.Similarity(previous, req.Content),
	})
}

func main() {
	cfg, err := loadConfig("vardiff.yaml")
	if err != nil {
		panic(fmt.Sprintf("loading config: %v", err))
	}

	log, err := cfg.buildLogger()
	if err != nil {
		panic(fmt.Sprintf("building logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	srv := newServer(log)
	log.Info("starting comparison service", zap.String("listen", cfg.Listen))
	if err := http.ListenAndServe(cfg.Listen, srv.routes()); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
