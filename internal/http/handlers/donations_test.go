package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foundation/internal/domain"
)

func TestDonationCreateOpensOrder(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{}
	app.Gateway = gateway
	donations := app.Donations.(*fakeDonationRepo)

	body := `{"amount":"500","currency":"inr"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.DonationCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("DonationCreate status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if gateway.calls != 1 || gateway.lastAmt != 50000 {
		t.Fatalf("gateway called %d times with amount %d, want once with 50000", gateway.calls, gateway.lastAmt)
	}
	if len(donations.created) != 1 {
		t.Fatalf("persisted %d donations, want 1", len(donations.created))
	}
	d := donations.created[0]
	if d.Status != domain.DonationPending {
		t.Fatalf("new donation status = %q, want %q", d.Status, domain.DonationPending)
	}
	if d.Currency != "INR" {
		t.Fatalf("currency = %q, want it normalized to INR", d.Currency)
	}
	if d.OrderID == "" {
		t.Fatalf("donation was persisted without the gateway order handle")
	}
}

func TestDonationCreateRejectsNonPositiveBeforeGateway(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-5", ""} {
		app := newTestApp()
		gateway := &fakeGateway{}
		app.Gateway = gateway
		donations := app.Donations.(*fakeDonationRepo)

		body := `{"amount":"` + amount + `"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
		rec := httptest.NewRecorder()
		app.DonationCreate(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("amount %q: status = %d, want %d", amount, rec.Code, http.StatusUnprocessableEntity)
		}
		if gateway.calls != 0 {
			t.Fatalf("amount %q: gateway was called %d times, want 0", amount, gateway.calls)
		}
		if len(donations.created) != 0 {
			t.Fatalf("amount %q: persisted %d donations, want 0", amount, len(donations.created))
		}
	}
}

func TestDonationCreateGatewayFailurePersistsNothing(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{err: errors.New("provider down")}
	app.Gateway = gateway
	donations := app.Donations.(*fakeDonationRepo)

	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(`{"amount":"500"}`))
	rec := httptest.NewRecorder()
	app.DonationCreate(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("DonationCreate status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	if len(donations.created) != 0 {
		t.Fatalf("failed order persisted %d donations, want 0", len(donations.created))
	}
}

func TestDonationCreateWithoutGatewayIsUnavailable(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(`{"amount":"500"}`))
	rec := httptest.NewRecorder()
	app.DonationCreate(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("DonationCreate status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestDonationCreateUnknownCampaignIsFieldError(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{}
	app.Gateway = gateway

	body := `{"amount":"500","campaign_id":"no-such-campaign"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.DonationCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("DonationCreate status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway was called %d times for an unknown campaign, want 0", gateway.calls)
	}
}

func TestPaymentConfirmMarksPaidAndGrowsCampaign(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{nextID: "order_42"}
	app.Gateway = gateway
	campaigns := app.Campaigns.(*fakeCampaignRepo)
	donations := app.Donations.(*fakeDonationRepo)

	campaigns.created = append(campaigns.created, domain.Campaign{
		ID:         "camp-1",
		OwnerID:    "user-1",
		Title:      "Clean Water",
		GoalAmount: 5000000,
	})

	body := `{"amount":"500","campaign_id":"camp-1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.DonationCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("DonationCreate status = %d (body %s)", rec.Code, rec.Body.String())
	}

	confirm := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", strings.NewReader(`{"order_id":"order_42"}`))
		rec := httptest.NewRecorder()
		app.PaymentConfirm(rec, req)
		return rec
	}

	first := confirm()
	if first.Code != http.StatusOK {
		t.Fatalf("PaymentConfirm status = %d, want %d (body %s)", first.Code, http.StatusOK, first.Body.String())
	}
	if donations.created[0].Status != domain.DonationPaid {
		t.Fatalf("donation status = %q after confirm, want %q", donations.created[0].Status, domain.DonationPaid)
	}
	if campaigns.raised["camp-1"] != 50000 {
		t.Fatalf("campaign raised by %d, want 50000", campaigns.raised["camp-1"])
	}

	// Re-delivered confirmation must not count the donation twice.
	second := confirm()
	if second.Code != http.StatusOK {
		t.Fatalf("repeat PaymentConfirm status = %d, want %d", second.Code, http.StatusOK)
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(second.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "already confirmed" {
		t.Fatalf("repeat confirm status = %q, want %q", resp.Status, "already confirmed")
	}
	if campaigns.raised["camp-1"] != 50000 {
		t.Fatalf("campaign raised by %d after repeat confirm, want still 50000", campaigns.raised["camp-1"])
	}
}

func TestPaymentConfirmUnknownOrder(t *testing.T) {
	app := newTestApp()
	app.Gateway = &fakeGateway{}

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", strings.NewReader(`{"order_id":"missing"}`))
	rec := httptest.NewRecorder()
	app.PaymentConfirm(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("PaymentConfirm status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPaymentConfirmWithoutGatewayIsUnavailable(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", strings.NewReader(`{"order_id":"order_1"}`))
	rec := httptest.NewRecorder()
	app.PaymentConfirm(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("PaymentConfirm status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

// A caller who knows an order handle must not be able to flip a donation to
// paid when the provider has not collected the money.
func TestPaymentConfirmRejectsUnsettledOrder(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{nextID: "order_7", unsettled: true}
	app.Gateway = gateway
	donations := app.Donations.(*fakeDonationRepo)

	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(`{"amount":"500"}`))
	app.DonationCreate(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", strings.NewReader(`{"order_id":"order_7"}`))
	rec := httptest.NewRecorder()
	app.PaymentConfirm(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("PaymentConfirm status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if len(gateway.verified) != 1 || gateway.verified[0] != "order_7" {
		t.Fatalf("gateway verified %v, want exactly order_7", gateway.verified)
	}
	if donations.created[0].Status != domain.DonationPending {
		t.Fatalf("donation status = %q, want it still pending", donations.created[0].Status)
	}
}

func TestPaymentConfirmGatewayVerificationFailure(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{nextID: "order_8"}
	app.Gateway = gateway
	donations := app.Donations.(*fakeDonationRepo)

	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(`{"amount":"500"}`))
	app.DonationCreate(httptest.NewRecorder(), req)

	gateway.verifyErr = errors.New("provider down")
	req = httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", strings.NewReader(`{"order_id":"order_8"}`))
	rec := httptest.NewRecorder()
	app.PaymentConfirm(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("PaymentConfirm status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	if donations.created[0].Status != domain.DonationPending {
		t.Fatalf("donation status = %q, want it still pending", donations.created[0].Status)
	}
}

// A confirmation that fails partway leaves the donation pending, so the
// gateway's retry completes the flip and credits the campaign exactly once.
func TestPaymentConfirmFailureThenRetryCreditsOnce(t *testing.T) {
	app := newTestApp()
	gateway := &fakeGateway{nextID: "order_9"}
	app.Gateway = gateway
	campaigns := app.Campaigns.(*fakeCampaignRepo)
	donations := app.Donations.(*fakeDonationRepo)

	campaigns.created = append(campaigns.created, domain.Campaign{
		ID:         "camp-1",
		OwnerID:    "user-1",
		Title:      "Clean Water",
		GoalAmount: 5000000,
	})

	body := `{"amount":"500","campaign_id":"camp-1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/donations", strings.NewReader(body))
	app.DonationCreate(httptest.NewRecorder(), req)

	confirm := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/confirm", strings.NewReader(`{"order_id":"order_9"}`))
		rec := httptest.NewRecorder()
		app.PaymentConfirm(rec, req)
		return rec
	}

	donations.creditErr = errors.New("write failed")
	if rec := confirm(); rec.Code != http.StatusInternalServerError {
		t.Fatalf("failing confirm status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if donations.created[0].Status != domain.DonationPending {
		t.Fatalf("donation status = %q after failed confirm, want it still pending", donations.created[0].Status)
	}
	if campaigns.raised["camp-1"] != 0 {
		t.Fatalf("campaign raised by %d after failed confirm, want 0", campaigns.raised["camp-1"])
	}

	donations.creditErr = nil
	if rec := confirm(); rec.Code != http.StatusOK {
		t.Fatalf("retry confirm status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if donations.created[0].Status != domain.DonationPaid {
		t.Fatalf("donation status = %q after retry, want %q", donations.created[0].Status, domain.DonationPaid)
	}
	if campaigns.raised["camp-1"] != 50000 {
		t.Fatalf("campaign raised by %d after retry, want exactly 50000", campaigns.raised["camp-1"])
	}
}
