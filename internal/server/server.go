package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/funvibe/poly/internal/evaluator"
	"github.com/funvibe/poly/internal/parser"
)

// minCompletionLen is the shortest completion prefix the server answers.
const minCompletionLen = 3

// Server exposes a node over HTTP: POST /eval evaluates a form-encoded
// expression, GET /completions lists root-environment names by prefix. The
// evaluator is single-threaded, so requests serialise on a mutex.
type Server struct {
	node *evaluator.Node
	mu   sync.Mutex
	log  *slog.Logger
}

func New(node *evaluator.Node, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{node: node, log: log}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /eval", s.handleEval)
	mux.HandleFunc("GET /completions", s.handleCompletions)
	return mux
}

// ListenAndServe runs the server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", slog.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

type exprResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type valuesResponse struct {
	Values []string `json:"values"`
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	input := strings.TrimSpace(r.FormValue("input"))
	if input == "" {
		s.writeError(w, "No input given")
		return
	}

	e, err := parser.ReadExpr(input)
	if err != nil {
		s.writeError(w, err.Error())
		return
	}

	s.mu.Lock()
	val, err := s.node.EvalRoot(e)
	s.mu.Unlock()
	if err != nil {
		s.log.Info("eval failed", slog.String("input", input), slog.String("error", err.Error()))
		s.writeError(w, err.Error())
		return
	}

	s.writeJSON(w, exprResponse{Type: "expr", Value: val.String()})
}

func (s *Server) handleCompletions(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, "No input given")
		return
	}
	if len(name) < minCompletionLen {
		s.writeError(w, "Input must be longer than 2 characters")
		return
	}

	s.mu.Lock()
	names := s.node.Names()
	s.mu.Unlock()

	matches := []string{}
	for _, candidate := range names {
		if strings.HasPrefix(candidate, name) {
			matches = append(matches, candidate)
		}
	}
	sort.Strings(matches)
	s.writeJSON(w, valuesResponse{Values: matches})
}

func (s *Server) writeError(w http.ResponseWriter, message string) {
	s.writeJSON(w, errorResponse{Type: "error", Message: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("write response", slog.String("error", err.Error()))
	}
}
