package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"folio.dev/internal/config"
	"folio.dev/internal/logger"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// PageHandler renders the hosting page with the portfolio grid filled in
type PageHandler struct {
	site           config.SiteConfig
	pageURL        *url.URL
	projectService *services.ProjectService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(site config.SiteConfig, pageURL *url.URL, ps *services.ProjectService) *PageHandler {
	return &PageHandler{site: site, pageURL: pageURL, projectService: ps}
}

// ServePage handles GET /. Browsers never send the fragment, so the
// filter query parameter stands in for it.
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	src, err := os.ReadFile(filepath.Join(h.site.Dir, h.site.Page))
	if err != nil {
		log := logger.GetAPILogger()
		log.Error().Err(err).Msg("Failed to read page")
		respondError(w, http.StatusInternalServerError, "Page unavailable")
		return
	}

	location := *h.pageURL
	location.Fragment = r.URL.Query().Get("filter")

	page, err := services.OpenPage(r.Context(), bytes.NewReader(src), location.String(), h.projectService,
		services.WithDefaultFilter(models.Filter(h.site.DefaultFilter)))
	if err != nil {
		log := logger.GetAPILogger()
		log.Error().Err(err).Msg("Failed to open page")
		respondError(w, http.StatusInternalServerError, "Page unavailable")
		return
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		log := logger.GetAPILogger()
		log.Error().Err(err).Msg("Failed to render page")
		respondError(w, http.StatusInternalServerError, "Page unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
