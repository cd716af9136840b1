// Package server exposes the layout engine over a JSON HTTP API backed
// by the run store.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/HasnainAbbasi1/planit/internal/store"
	"github.com/HasnainAbbasi1/planit/pkg/layout"
	"github.com/HasnainAbbasi1/planit/pkg/plan"
	"github.com/HasnainAbbasi1/planit/pkg/validation"
)

// Server holds the HTTP surface around the engine and the store.
type Server struct {
	cfg    Config
	store  *store.Store
	logger *log.Logger
}

// New wires a server from its parts.
func New(cfg Config, st *store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, store: st, logger: logger}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Route("/api", func(r chi.Router) {
		r.Post("/plan", s.handlePlan)
		r.Get("/plan/{id}", s.handleGetPlan)
		r.Get("/plans", s.handleListPlans)
		r.Delete("/plan/{id}", s.handleDeletePlan)
		r.Get("/health", s.handleHealth)
	})
	return r
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	s.logger.Info("planit server starting", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Router())
}

// planResponse is the POST /api/plan payload: the persisted id, the
// layout itself, and the engine's findings.
type planResponse struct {
	ID     string               `json:"id"`
	Result *layout.LayoutResult `json:"result"`
	Report *validation.Report   `json:"report"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req plan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, report, err := layout.Generate(req)
	if errors.Is(err, plan.ErrInvalidGeometry) {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	id, err := s.store.Save(r.Context(), req, result)
	if err != nil {
		s.logger.Error("persisting run", "err", err)
		s.respondError(w, http.StatusInternalServerError, "persisting run failed")
		return
	}

	s.logger.Info("generated layout",
		"id", id, "name", req.Name, "seed", req.Seed,
		"cells", len(result.Cells), "plots", len(result.Plots))
	s.respondJSON(w, http.StatusCreated, planResponse{ID: id, Result: result, Report: report})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	run, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		s.logger.Error("loading run", "id", id, "err", err)
		s.respondError(w, http.StatusInternalServerError, "loading run failed")
		return
	}
	s.respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.List(r.Context(), s.cfg.ListLimit)
	if err != nil {
		s.logger.Error("listing runs", "err", err)
		s.respondError(w, http.StatusInternalServerError, "listing runs failed")
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		s.logger.Error("deleting run", "id", id, "err", err)
		s.respondError(w, http.StatusInternalServerError, "deleting run failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
