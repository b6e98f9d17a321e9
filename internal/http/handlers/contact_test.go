package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestContactCreatePersistsSubmission(t *testing.T) {
	app := newTestApp()
	contacts := app.Contacts.(*fakeContactRepo)

	body := `{"name":"Asha Rao","email":"asha@example.org","subject":"","message":"I would like to help."}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.ContactCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("ContactCreate status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(contacts.created) != 1 {
		t.Fatalf("persisted %d messages, want 1", len(contacts.created))
	}
	got := contacts.created[0]
	if got.Name != "Asha Rao" || got.Email != "asha@example.org" || got.Message != "I would like to help." {
		t.Fatalf("persisted message %+v does not match submission", got)
	}
	if got.Subject != nil {
		t.Fatalf("empty subject should persist as nil, got %q", *got.Subject)
	}
	if got.SubmittedAt.IsZero() {
		t.Fatalf("submission time was not recorded")
	}
}

func TestContactCreateRejectsInvalidWithoutPersisting(t *testing.T) {
	app := newTestApp()
	contacts := app.Contacts.(*fakeContactRepo)

	// Name and message are valid; only the email is malformed.
	body := `{"name":"Asha Rao","email":"not-an-email","subject":"hi","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.ContactCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("ContactCreate status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if len(contacts.created) != 0 {
		t.Fatalf("invalid submission persisted %d messages, want 0", len(contacts.created))
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Fields) != 1 {
		t.Fatalf("fields = %v, want only the email named", resp.Fields)
	}
	if _, ok := resp.Fields["email"]; !ok {
		t.Fatalf("fields = %v, want email named", resp.Fields)
	}
}

func TestContactCreateNamesAllMissingFields(t *testing.T) {
	app := newTestApp()
	contacts := app.Contacts.(*fakeContactRepo)

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	app.ContactCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("ContactCreate status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if len(contacts.created) != 0 {
		t.Fatalf("invalid submission persisted %d messages, want 0", len(contacts.created))
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, ok := resp.Fields[field]; !ok {
			t.Fatalf("fields = %v, want %s named", resp.Fields, field)
		}
	}
	if _, ok := resp.Fields["subject"]; ok {
		t.Fatalf("fields = %v, subject is optional and must not be named", resp.Fields)
	}
}
