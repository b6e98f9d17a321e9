package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"foundation/internal/domain"
	"foundation/internal/validate"
)

// Media-centre entities share the same thin create/list shape: validate the
// handful of fields, persist, list newest-first. Creation routes are gated.

type podcastRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func (a *App) PodcastCreate(w http.ResponseWriter, r *http.Request) {
	var req podcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fields := validate.Fields{}
	if req.Title == "" {
		fields.Add("title", "this field is required")
	}
	if req.Link == "" {
		fields.Add("link", "this field is required")
	}
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}
	p := &domain.Podcast{ID: uuid.NewString(), Title: req.Title, Description: req.Description, Link: req.Link}
	if err := a.Media.CreatePodcast(r.Context(), p); err != nil {
		a.storeError(w, r, "create podcast", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": p.ID, "created_at": p.CreatedAt})
}

func (a *App) PodcastsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	podcasts, err := a.Media.ListPodcasts(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list podcasts", err)
		return
	}
	items := make([]map[string]any, 0, len(podcasts))
	for _, p := range podcasts {
		items = append(items, map[string]any{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"link":        p.Link,
			"created_at":  p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type videoRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (a *App) VideoCreate(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" {
		a.fieldErrors(w, validate.Fields{"title": "this field is required"})
		return
	}
	v := &domain.Video{ID: uuid.NewString(), Title: req.Title, URL: optional(req.URL)}
	if err := a.Media.CreateVideo(r.Context(), v); err != nil {
		a.storeError(w, r, "create video", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": v.ID, "created_at": v.CreatedAt})
}

func (a *App) VideosList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	videos, err := a.Media.ListVideos(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list videos", err)
		return
	}
	items := make([]map[string]any, 0, len(videos))
	for _, v := range videos {
		items = append(items, map[string]any{
			"id":         v.ID,
			"title":      v.Title,
			"url":        v.URL,
			"created_at": v.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type pressClippingRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

func (a *App) PressClippingCreate(w http.ResponseWriter, r *http.Request) {
	var req pressClippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fields := validate.Fields{}
	if req.Title == "" {
		fields.Add("title", "this field is required")
	}
	if req.ImageURL == "" {
		fields.Add("image_url", "this field is required")
	}
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}
	p := &domain.PressClipping{ID: uuid.NewString(), Title: req.Title, ImageURL: req.ImageURL}
	if err := a.Media.CreatePressClipping(r.Context(), p); err != nil {
		a.storeError(w, r, "create press clipping", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": p.ID, "created_at": p.CreatedAt})
}

func (a *App) PressClippingsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	clippings, err := a.Media.ListPressClippings(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list press clippings", err)
		return
	}
	items := make([]map[string]any, 0, len(clippings))
	for _, p := range clippings {
		items = append(items, map[string]any{
			"id":         p.ID,
			"title":      p.Title,
			"image_url":  p.ImageURL,
			"created_at": p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type eventPhotoRequest struct {
	ImageURL string `json:"image_url"`
}

func (a *App) EventPhotoCreate(w http.ResponseWriter, r *http.Request) {
	var req eventPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ImageURL == "" {
		a.fieldErrors(w, validate.Fields{"image_url": "this field is required"})
		return
	}
	p := &domain.EventPhoto{ID: uuid.NewString(), ImageURL: req.ImageURL}
	if err := a.Media.CreateEventPhoto(r.Context(), p); err != nil {
		a.storeError(w, r, "create event photo", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": p.ID, "created_at": p.CreatedAt})
}

func (a *App) EventPhotosList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	photos, err := a.Media.ListEventPhotos(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list event photos", err)
		return
	}
	items := make([]map[string]any, 0, len(photos))
	for _, p := range photos {
		items = append(items, map[string]any{
			"id":         p.ID,
			"image_url":  p.ImageURL,
			"created_at": p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type reviewRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}

func (a *App) ReviewCreate(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" {
		a.fieldErrors(w, validate.Fields{"title": "this field is required"})
		return
	}
	rv := &domain.Review{ID: uuid.NewString(), Title: req.Title, ImageURL: optional(req.ImageURL), VideoURL: optional(req.VideoURL)}
	if err := a.Media.CreateReview(r.Context(), rv); err != nil {
		a.storeError(w, r, "create review", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": rv.ID, "created_at": rv.CreatedAt})
}

func (a *App) ReviewsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	reviews, err := a.Media.ListReviews(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list reviews", err)
		return
	}
	items := make([]map[string]any, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, map[string]any{
			"id":         rv.ID,
			"title":      rv.Title,
			"image_url":  rv.ImageURL,
			"video_url":  rv.VideoURL,
			"created_at": rv.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
