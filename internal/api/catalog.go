package api

import (
	"net/http"

	"attentionops/backend/internal/catalog"
	"attentionops/backend/internal/mission"
	"attentionops/backend/internal/observability"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.catalog.Templates(r.Context())
	if err != nil {
		s.catalogFailed(w, r, "templates", err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// handleListTemplatesByCategory answers unknown categories with an empty
// list; the category set is a UI filter, not a validated input.
func (s *Server) handleListTemplatesByCategory(w http.ResponseWriter, r *http.Request) {
	category := catalog.NormalizeCategory(chi.URLParam(r, "category"))
	if category == "" {
		writeBadRequest(w, "category is required")
		return
	}

	templates, err := s.catalog.TemplatesByCategory(r.Context(), category)
	if err != nil {
		s.catalogFailed(w, r, "templates_by_category", err)
		return
	}
	if templates == nil {
		templates = []catalog.MissionTemplate{}
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := s.catalog.Photos(r.Context())
	if err != nil {
		s.catalogFailed(w, r, "photos", err)
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

type optionsResponse struct {
	Platforms   []mission.Option     `json:"platforms"`
	Styles      []mission.Option     `json:"styles"`
	Goals       []mission.Option     `json:"goals"`
	Times       []mission.TimeOption `json:"times"`
	Categories  []mission.Option     `json:"categories"`
	BankVersion string               `json:"bankVersion"`
}

func (s *Server) handleGetOptions(w http.ResponseWriter, _ *http.Request) {
	bank := s.composer.Bank()
	writeJSON(w, http.StatusOK, optionsResponse{
		Platforms:   bank.PlatformOptions(),
		Styles:      bank.StyleOptions(),
		Goals:       bank.GoalOptions(),
		Times:       mission.TimeOptionList(),
		Categories:  mission.CategoryOptions(),
		BankVersion: bank.Version(),
	})
}

func (s *Server) catalogFailed(w http.ResponseWriter, r *http.Request, operation string, err error) {
	s.logger.Error("catalog_read_failed", observability.Fields{
		"request_id": requestIDFromRequest(r),
		"route":      routePatternFromRequest(r),
		"operation":  operation,
		"error":      err.Error(),
	})
	if isTimeout(err) {
		writeServiceUnavailable(w, "catalog unavailable")
		return
	}
	writeInternalError(w, "could not load "+operation)
}
