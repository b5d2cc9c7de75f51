package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/jtoivan/statnews/internal/pipeline"
	"github.com/jtoivan/statnews/internal/worker"
)

// Service is the generation surface the API exposes. Satisfied by
// pipeline.Service.
type Service interface {
	Generate(ctx context.Context, req pipeline.Request) (*pipeline.Article, error)
	Languages() []string
	Datasets() []string
	Locations(dataset string) ([]string, error)
}

// API routes article generation requests to the service, rate-limiting per
// client address.
type API struct {
	service Service
	limiter *worker.Limiter
}

// NewAPI creates the API handler. Pass a nil limiter to disable rate
// limiting.
func NewAPI(service Service, limiter *worker.Limiter) *API {
	return &API{service: service, limiter: limiter}
}

// Handler builds the route table.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", a.rateLimited(a.handleGenerate))
	mux.HandleFunc("GET /api/languages", a.handleLanguages)
	mux.HandleFunc("GET /api/datasets", a.handleDatasets)
	mux.HandleFunc("GET /api/locations/{dataset}", a.handleLocations)
	mux.HandleFunc("GET /healthz", a.handleHealth)
	return mux
}

func (a *API) rateLimited(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.limiter != nil && !a.limiter.Allow(clientKey(r)) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next(w, r)
	}
}

func (a *API) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" || req.Dataset == "" || req.Location == "" {
		writeError(w, http.StatusBadRequest, "language, dataset and location are required")
		return
	}

	article, err := a.service.Generate(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (a *API) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"languages": a.service.Languages()})
}

func (a *API) handleDatasets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"datasets": a.service.Datasets()})
}

func (a *API) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := a.service.Locations(r.PathValue("dataset"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"locations": locations})
}

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// clientKey buckets requests by client host for rate limiting.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
