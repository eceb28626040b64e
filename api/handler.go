// Package api - Request handlers
// Handlers parse input, call into the core engines, and serialize the
// result. No pricing rules live here.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ziyabeey1-ai/mysite/core/catalog"
	"github.com/ziyabeey1-ai/mysite/core/content"
	"github.com/ziyabeey1-ai/mysite/core/planner"
	"github.com/ziyabeey1-ai/mysite/core/proposal"
	"github.com/ziyabeey1-ai/mysite/core/roi"
	"github.com/ziyabeey1-ai/mysite/core/types"
	"github.com/ziyabeey1-ai/mysite/db"
	"github.com/ziyabeey1-ai/mysite/internal/logging"
	"github.com/ziyabeey1-ai/mysite/internal/mail"
	"github.com/ziyabeey1-ai/mysite/internal/vcard"
)

// handleHealth handles GET /v1/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /v1/version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"api_version": "v1",
	}, http.StatusOK)
}

// handleCatalog handles GET /v1/catalog?scale=
// Without a scale it returns the base template; with one it returns
// the derived, repriced catalog.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	scale := r.URL.Query().Get("scale")
	if scale == "" {
		s.writeJSON(w, catalog.Template(), http.StatusOK)
		return
	}
	s.writeJSON(w, catalog.Derive(scale), http.StatusOK)
}

// buildPlanner replays an estimate request onto a fresh planner
func buildPlanner(req *EstimateRequest) *planner.Planner {
	p := planner.New()
	for _, step := range p.Catalog().Steps {
		ids, ok := req.Selections[step.ID.String()]
		if !ok {
			continue
		}
		if step.Kind == types.SelectSingle {
			if len(ids) > 0 {
				p.Select(step.ID, ids[0])
			}
			continue
		}
		for _, id := range ids {
			p.Select(step.ID, id)
		}
	}
	if req.AdBudget != nil {
		p.SetAdBudget(*req.AdBudget)
	}
	return p
}

// handleEstimate handles POST /v1/estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	p := buildPlanner(&req)
	s.writeJSON(w, EstimateResponse{
		Breakdown: p.Finalize(),
		Totals:    p.Totals(),
	}, http.StatusOK)
}

// lineItems parses the breakdown summary into selection rows with
// detail copy
func lineItems(summary string) []LineItem {
	var items []LineItem
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "•") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "•"))
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		items = append(items, LineItem{
			Key:    key,
			Value:  strings.TrimSpace(value),
			Detail: proposal.DetailFor(key),
		})
	}
	return items
}

// handleProposal handles POST /v1/proposal
func (s *Server) handleProposal(w http.ResponseWriter, r *http.Request) {
	var req ProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	totals := proposal.Compute(req.Breakdown, types.BillingCycle(req.CycleMonths))
	msg := proposal.Compose(req.Brand, req.Breakdown, totals, req.Form)

	s.writeJSON(w, ProposalResponse{
		Totals:       totals,
		DiscountCode: proposal.DiscountCode,
		CanSubmit:    req.Form.CanSubmit(),
		Message:      msg,
		MailtoURL:    mail.MailtoURL(s.site.Email, msg),
		LineItems:    lineItems(req.Breakdown.Summary),
	}, http.StatusOK)
}

// handleRoi handles POST /v1/roi
func (s *Server) handleRoi(w http.ResponseWriter, r *http.Request) {
	var req RoiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	s.writeJSON(w, roi.Project(roi.Input{
		MonthlyVisitors: req.MonthlyVisitors,
		ConversionRate:  req.ConversionRate,
		OrderValue:      req.OrderValue,
	}), http.StatusOK)
}

// handlePortfolio handles GET /v1/content/portfolio
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, content.PortfolioProjects(), http.StatusOK)
}

// handleServices handles GET /v1/content/services
func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, content.Services(), http.StatusOK)
}

// handleVCard handles GET /v1/contact/vcard
func (s *Server) handleVCard(w http.ResponseWriter, r *http.Request) {
	card := vcard.Render(s.site)
	w.Header().Set("Content-Type", vcard.MIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+vcard.FileName()+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(card))
}

// handleCreateLead handles POST /v1/leads
func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Form.CanSubmit() {
		s.writeError(w, "INCOMPLETE_CONTACT", "name and email are required", http.StatusBadRequest)
		return
	}
	if s.leads == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "lead store not configured", http.StatusServiceUnavailable)
		return
	}

	totals := proposal.Compute(req.Breakdown, types.BillingCycle(req.CycleMonths))
	msg := proposal.Compose(req.Brand, req.Breakdown, totals, req.Form)

	id, err := s.leads.Insert(r.Context(), db.Lead{
		Name:         req.Form.Name,
		Email:        req.Form.Email,
		Phone:        req.Form.Phone,
		Note:         req.Form.Note,
		Brand:        req.Brand,
		CycleMonths:  totals.Cycle.Months(),
		OneTimeTotal: totals.DiscountedOneTime,
		InfraAnnual:  totals.InfraAnnual,
		ServiceTotal: totals.ServiceTotal,
		GrandTotal:   totals.GrandTotal,
		MediaBudget:  totals.MediaBudget,
		Summary:      req.Breakdown.Summary,
	})
	if err != nil {
		logging.Error("store lead", zap.Error(err))
		s.writeError(w, "STORE_ERROR", "could not store lead", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, LeadResponse{
		ID:        id,
		MailtoURL: mail.MailtoURL(s.site.Email, msg),
	}, http.StatusCreated)
}

// handleListLeads handles GET /v1/leads
func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	if s.leads == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "lead store not configured", http.StatusServiceUnavailable)
		return
	}

	leads, err := s.leads.List(r.Context(), 50)
	if err != nil {
		logging.Error("list leads", zap.Error(err))
		s.writeError(w, "STORE_ERROR", "could not list leads", http.StatusInternalServerError)
		return
	}
	if leads == nil {
		leads = []db.Lead{}
	}
	s.writeJSON(w, leads, http.StatusOK)
}

// handleDraft handles POST /v1/draft
// Always responds 200 with either the generated draft or fallback
// copy; the generative call is best-effort.
func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	text := s.drafts.GenerateEmailDraft(r.Context(), req.Name, req.ProjectType)
	s.writeJSON(w, DraftResponse{Draft: text}, http.StatusOK)
}
