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

// VolunteerCreate handles the volunteer signup form.
func (a *App) VolunteerCreate(w http.ResponseWriter, r *http.Request) {
	var req validate.VolunteerInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if fields := validate.Volunteer(&req); !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}

	v := &domain.Volunteer{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        optional(req.Phone),
		Availability: optional(req.Availability),
		Message:      optional(req.Message),
		IsActive:     true,
	}
	if err := a.Volunteers.Create(r.Context(), v); err != nil {
		a.storeError(w, r, "create volunteer", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":      v.ID,
		"message": flash(r.Context(), "volunteer_received"),
	})
}

// VolunteersList returns registered volunteers newest-first (gated).
func (a *App) VolunteersList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 50)
	vols, err := a.Volunteers.ListRecent(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list volunteers", err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": volunteerDTOs(vols)})
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

// VolunteerSetActive toggles the administrative is_active flag.
func (a *App) VolunteerSetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Volunteers.SetActive(r.Context(), id, req.Active); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "volunteer not found")
			return
		}
		a.storeError(w, r, "update volunteer", err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "is_active": req.Active})
}

func volunteerDTOs(vols []domain.Volunteer) []map[string]any {
	items := make([]map[string]any, 0, len(vols))
	for _, v := range vols {
		items = append(items, map[string]any{
			"id":           v.ID,
			"full_name":    v.FullName,
			"email":        v.Email,
			"phone":        v.Phone,
			"availability": v.Availability,
			"message":      v.Message,
			"is_active":    v.IsActive,
			"created_at":   v.CreatedAt,
		})
	}
	return items
}
