package handlers

import "net/http"

// Dashboard assembles the gated dashboard context: recent campaigns and
// volunteers plus summary figures.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.ListRecent(r.Context(), 20, 0)
	if err != nil {
		a.storeError(w, r, "list campaigns", err)
		return
	}
	volunteers, err := a.Volunteers.ListRecent(r.Context(), 20, 0)
	if err != nil {
		a.storeError(w, r, "list volunteers", err)
		return
	}
	totalDonations, err := a.Donations.TotalPaid(r.Context())
	if err != nil {
		a.storeError(w, r, "sum donations", err)
		return
	}

	var totalRaised int64
	campaignItems := make([]map[string]any, 0, len(campaigns))
	for _, c := range campaigns {
		totalRaised += c.RaisedAmount
		campaignItems = append(campaignItems, campaignDTO(c))
	}

	a.json(w, http.StatusOK, map[string]any{
		"campaigns":  campaignItems,
		"volunteers": volunteerDTOs(volunteers),
		"summary": map[string]any{
			"campaign_count":  len(campaignItems),
			"total_raised":    formatAmount(totalRaised),
			"total_donations": formatAmount(totalDonations),
		},
	})
}
