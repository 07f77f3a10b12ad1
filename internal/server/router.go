package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/scoring"
	"github.com/gzhole/labelshield/internal/service"
)

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(api chi.Router) {
		api.Post("/analyze", s.handleAnalyze)
		api.Get("/ingredients", s.handleListIngredients)
		api.Get("/ingredients/{name}", s.handleGetIngredient)
		api.Get("/profile/{userID}", s.handleGetProfile)
		api.Put("/profile/{userID}", s.handleUpdateProfile)
	})

	r.Get("/mcp", s.handleMCPInfo)
	r.Post("/mcp", s.handleMCP)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"version":         Version,
		"catalog_version": s.svc.Catalog().Version(),
	})
}

// analyzeRequest keeps ingredients and profile loosely typed so that a
// non-list or non-mapping is reported as a validation error.
type analyzeRequest struct {
	UserID      string `json:"user_id"`
	Ingredients any    `json:"ingredients"`
	LabelText   string `json:"label_text"`
	Profile     any    `json:"profile"`
}

func (r analyzeRequest) toServiceRequest(source string) (service.Request, error) {
	req := service.Request{Source: source, UserID: r.UserID, LabelText: r.LabelText}

	if r.Ingredients != nil {
		names, err := scoring.DecodeIngredients(r.Ingredients)
		if err != nil {
			return req, err
		}
		req.Ingredients = names
	}
	if r.Profile != nil {
		p, err := scoring.DecodeProfile(r.Profile)
		if err != nil {
			return req, err
		}
		req.Profile = &p
	}
	return req, nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}

	req, err := body.toServiceRequest(logger.SourceHTTP)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.svc.Analyze(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if resp.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, resp.Result)
}

func (s *Server) handleListIngredients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ingredients": s.svc.Ingredients()})
}

func (s *Server) handleGetIngredient(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	info, ok := s.svc.Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "ingredient not found: " + name})
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Profile(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Canonical())
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd profile.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	if upd.IsEmpty() {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "no profile fields provided"})
		return
	}

	p, err := s.svc.UpdateProfile(r.Context(), chi.URLParam(r, "userID"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Canonical())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput), errors.Is(err, scoring.ErrInvalidProfile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrUserRequired), errors.Is(err, errInvalidParams):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoProfileStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]any{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
