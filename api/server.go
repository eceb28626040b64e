// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine
// orchestration, output serialization. The API NEVER performs pricing
// logic.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ziyabeey1-ai/mysite/db"
	"github.com/ziyabeey1-ai/mysite/internal/config"
	"github.com/ziyabeey1-ai/mysite/internal/draft"
)

// Server is the API server
type Server struct {
	router  chi.Router
	version string
	site    config.SiteConfig
	leads   *db.LeadStore
	drafts  *draft.Client
}

// NewServer creates a new API server. leads may be nil when the lead
// store is not configured.
func NewServer(version string, cfg *config.Config, leads *db.LeadStore) *Server {
	s := &Server{
		version: version,
		site:    cfg.Site,
		leads:   leads,
		drafts:  draft.NewClient(cfg.Draft),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)

		r.Get("/catalog", s.handleCatalog)
		r.Post("/estimate", s.handleEstimate)
		r.Post("/proposal", s.handleProposal)
		r.Post("/roi", s.handleRoi)

		r.Get("/content/portfolio", s.handlePortfolio)
		r.Get("/content/services", s.handleServices)
		r.Get("/contact/vcard", s.handleVCard)

		r.Post("/leads", s.handleCreateLead)
		r.Get("/leads", s.handleListLeads)

		r.Post("/draft", s.handleDraft)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// writeJSON serializes a response
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError serializes an error envelope
func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Error: code, Message: message}, status)
}
