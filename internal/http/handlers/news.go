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

// NewsCreate publishes a news article (gated). An omitted slug is derived
// from the title; slug uniqueness is checked up front with the unique index
// as the backstop.
func (a *App) NewsCreate(w http.ResponseWriter, r *http.Request) {
	var req validate.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fields := validate.News(&req)
	slug := req.Slug
	if slug == "" {
		slug = domain.Slugify(req.Title)
	}
	if fields.Valid() && slug == "" {
		fields.Add("slug", "a slug could not be derived from the title")
	}
	if fields.Valid() {
		taken, err := a.News.SlugTaken(r.Context(), slug)
		if err != nil {
			a.storeError(w, r, "check slug", err)
			return
		}
		if taken {
			fields.Add("slug", "an article with this slug already exists")
		}
	}
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}

	n := &domain.News{
		ID:      uuid.NewString(),
		Title:   req.Title,
		Slug:    slug,
		Content: req.Content,
		Link:    optional(req.Link),
	}
	if err := a.News.Create(r.Context(), n); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			fields.Add("slug", "an article with this slug already exists")
			a.fieldErrors(w, fields)
			return
		}
		a.storeError(w, r, "create news", err)
		return
	}
	a.json(w, http.StatusCreated, newsDTO(*n))
}

// NewsList returns articles newest-first.
func (a *App) NewsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	articles, err := a.News.ListRecent(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list news", err)
		return
	}
	items := make([]map[string]any, 0, len(articles))
	for _, n := range articles {
		items = append(items, newsDTO(n))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// NewsBySlug returns one article.
func (a *App) NewsBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	n, err := a.News.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "article not found")
			return
		}
		a.storeError(w, r, "get news", err)
		return
	}
	a.json(w, http.StatusOK, newsDTO(*n))
}

func newsDTO(n domain.News) map[string]any {
	return map[string]any{
		"id":         n.ID,
		"title":      n.Title,
		"slug":       n.Slug,
		"content":    n.Content,
		"link":       n.Link,
		"created_at": n.CreatedAt,
	}
}
