package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"foundation/internal/domain"
	"foundation/internal/validate"
)

// CampaignCreate launches a fundraising campaign. The route is gated, and
// the owner always comes from the authenticated session, never the payload.
func (a *App) CampaignCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "login required")
		return
	}
	var req validate.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	goal, fields := validate.Campaign(&req)
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}

	c := &domain.Campaign{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  goal,
	}
	if err := a.Campaigns.Create(r.Context(), c); err != nil {
		a.storeError(w, r, "create campaign", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"message":  flash(r.Context(), "campaign_launched"),
		"campaign": campaignDTO(*c),
	})
}

// CampaignsList returns campaigns newest-first.
func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	limit, offset := listParams(r, 20)
	campaigns, err := a.Campaigns.ListRecent(r.Context(), limit, offset)
	if err != nil {
		a.storeError(w, r, "list campaigns", err)
		return
	}
	items := make([]map[string]any, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, campaignDTO(c))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// campaignDTO renders amounts as decimal strings in major units; progress
// may exceed 100.
func campaignDTO(c domain.Campaign) map[string]any {
	return map[string]any{
		"id":               c.ID,
		"owner_id":         c.OwnerID,
		"title":            c.Title,
		"description":      c.Description,
		"goal_amount":      formatAmount(c.GoalAmount),
		"raised_amount":    formatAmount(c.RaisedAmount),
		"progress_percent": c.ProgressPercent(),
		"created_at":       c.CreatedAt,
	}
}
