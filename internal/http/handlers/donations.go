package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"foundation/internal/domain"
	"foundation/internal/middleware"
	"foundation/internal/validate"
)

// DonationCreate opens a payment order for a donation. Non-positive amounts
// are rejected before the gateway is ever called; the gateway's order
// handle goes back to the caller so checkout can complete client-side.
func (a *App) DonationCreate(w http.ResponseWriter, r *http.Request) {
	if a.Gateway == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "donations are not enabled")
		return
	}
	var req validate.DonationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	amount, fields := validate.Donation(&req)
	if fields.Valid() && req.CampaignID != "" {
		if _, err := a.Campaigns.GetByID(r.Context(), req.CampaignID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				fields.Add("campaign_id", "campaign not found")
			} else {
				a.storeError(w, r, "get campaign", err)
				return
			}
		}
	}
	if !fields.Valid() {
		a.fieldErrors(w, fields)
		return
	}

	metadata := map[string]string{"purpose": "donation"}
	if req.CampaignID != "" {
		metadata["campaign_id"] = req.CampaignID
	}
	order, err := a.Gateway.CreateOrder(r.Context(), amount, req.Currency, metadata)
	if err != nil {
		a.Logger.Error().Err(err).Msg("payment gateway order failed")
		a.error(w, http.StatusBadGateway, "gateway_error", "could not start the payment, please try again")
		return
	}

	d := &domain.Donation{
		ID:           uuid.NewString(),
		UserID:       optional(a.currentUserID(r)),
		CampaignID:   optional(req.CampaignID),
		Amount:       amount,
		Currency:     req.Currency,
		OrderID:      order.OrderID,
		Status:       domain.DonationPending,
		DonorCountry: optional(middleware.CountryFromContext(r.Context())),
	}
	if err := a.Donations.Create(r.Context(), d); err != nil {
		a.storeError(w, r, "create donation", err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"donation_id":   d.ID,
		"order_id":      order.OrderID,
		"client_secret": order.ClientSecret,
		"amount":        formatAmount(amount),
		"currency":      req.Currency,
	})
}

type paymentConfirmRequest struct {
	OrderID string `json:"order_id"`
}

// PaymentConfirm is the callback hit once a payment settles. The order
// handle alone proves nothing, so settlement is checked against the gateway
// before the donation flips to paid; the flip and the campaign credit are
// one store transaction. Re-delivery of the same confirmation is a no-op.
func (a *App) PaymentConfirm(w http.ResponseWriter, r *http.Request) {
	if a.Gateway == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "donations are not enabled")
		return
	}
	var req paymentConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.OrderID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "order_id required")
		return
	}

	d, err := a.Donations.GetByOrderID(r.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "unknown order")
			return
		}
		a.storeError(w, r, "lookup donation", err)
		return
	}
	settled, err := a.Gateway.OrderSettled(r.Context(), req.OrderID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("payment gateway verification failed")
		a.error(w, http.StatusBadGateway, "gateway_error", "could not verify the payment, please try again")
		return
	}
	if !settled {
		a.error(w, http.StatusConflict, "not_settled", "the payment has not settled")
		return
	}
	if err := a.Donations.ConfirmPaid(r.Context(), d.ID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			a.json(w, http.StatusOK, map[string]string{"status": "already confirmed"})
			return
		}
		a.storeError(w, r, "confirm donation", err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "confirmed"})
}
