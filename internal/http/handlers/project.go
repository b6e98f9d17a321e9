package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"foundation/internal/domain"
	"foundation/internal/validate"
)

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ProjectCreate adds a foundation project (gated).
func (a *App) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fields := validate.Fields{}
	if req.Title == "" {
		fields.Add("title", "this field is required")
	}
	if req.Description == "" {
		fields.Add("description", "this field is required")
	}
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}
	p := &domain.Project{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    optional(req.ImageURL),
	}
	if err := a.Projects.Create(r.Context(), p); err != nil {
		a.storeError(w, r, "create project", err)
		return
	}
	a.json(w, http.StatusCreated, projectDTO(*p))
}

// ProjectsList returns projects newest-first.
func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	projects, err := a.Projects.ListRecent(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list projects", err)
		return
	}
	items := make([]map[string]any, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectDTO(p))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ProjectByID returns one project.
func (a *App) ProjectByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := a.Projects.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "project not found")
			return
		}
		a.storeError(w, r, "get project", err)
		return
	}
	a.json(w, http.StatusOK, projectDTO(*p))
}

func projectDTO(p domain.Project) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}
