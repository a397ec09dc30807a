package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/dom"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	page           *dom.Location
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, page *dom.Location) *ProjectHandler {
	return &ProjectHandler{projectService: ps, page: page}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	portfolio, _ := h.projectService.Load(r.Context(), h.page)
	respondJSON(w, http.StatusOK, portfolio.Projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	portfolio, _ := h.projectService.Load(r.Context(), h.page)
	project, err := portfolio.FindProject(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
