package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/config"
	"folio.dev/internal/dom"
	"folio.dev/internal/logger"
	"folio.dev/internal/middleware"
	"folio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	pageURL, err := PageURL(cfg.Site)
	if err != nil {
		return nil, err
	}
	// The API only resolves against this Location, it never navigates it
	apiPage, err := dom.NewLocation(pageURL.String())
	if err != nil {
		return nil, err
	}

	// Initialize services
	client := services.NewFileClient(cfg.Site.Dir)
	if cfg.Site.DataBaseURL != "" {
		client = &http.Client{}
	}
	projectService := services.NewProjectService(client, cfg.Site.DataPath)

	// Initialize handlers
	pageHandler := NewPageHandler(cfg.Site, pageURL, projectService)
	projectHandler := NewProjectHandler(projectService, apiPage)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files and the data document
	fileServer := http.FileServer(http.Dir(cfg.Site.Dir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	r.Handle("/data/*", fileServer)

	// Rendered page at root
	r.Get("/", pageHandler.ServePage)

	return r, nil
}

// PageURL returns the address the hosting page is loaded from. The data
// document is resolved relative to it.
func PageURL(site config.SiteConfig) (*url.URL, error) {
	base := "file:///"
	if site.DataBaseURL != "" {
		base = site.DataBaseURL
	}
	b, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid site base %q: %w", base, err)
	}
	page, err := url.Parse(site.Page)
	if err != nil {
		return nil, fmt.Errorf("invalid site page %q: %w", site.Page, err)
	}
	return b.ResolveReference(page), nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log := logger.GetAPILogger()
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
