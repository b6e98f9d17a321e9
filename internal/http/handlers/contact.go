package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"foundation/internal/domain"
	"foundation/internal/validate"
)

// ContactCreate handles the contact form submission: validate, persist one
// record, report the outcome. Rejected payloads persist nothing.
func (a *App) ContactCreate(w http.ResponseWriter, r *http.Request) {
	var req validate.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if fields := validate.Contact(&req); !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}

	msg := &domain.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: optional(req.Subject),
		Message: req.Message,
	}
	if err := a.Contacts.Create(r.Context(), msg); err != nil {
		a.storeError(w, r, "create contact message", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":      msg.ID,
		"message": flash(r.Context(), "contact_received"),
	})
}

// ContactMessagesList is the gated inbox for contact form submissions,
// newest-first.
func (a *App) ContactMessagesList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 50)
	msgs, err := a.Contacts.ListRecent(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list contact messages", err)
		return
	}
	items := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, map[string]any{
			"id":           m.ID,
			"name":         m.Name,
			"email":        m.Email,
			"subject":      m.Subject,
			"message":      m.Message,
			"submitted_at": m.SubmittedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
