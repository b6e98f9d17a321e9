package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewsCreateDerivesSlugFromTitle(t *testing.T) {
	app := newTestApp()
	news := app.News.(*fakeNewsRepo)

	body := `{"title":"Annual Report 2025: Highlights!","content":"The year in review."}`
	req := httptest.NewRequest(http.MethodPost, "/v1/news", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.NewsCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("NewsCreate status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if len(news.created) != 1 {
		t.Fatalf("persisted %d articles, want 1", len(news.created))
	}
	if got, want := news.created[0].Slug, "annual-report-2025-highlights"; got != want {
		t.Fatalf("derived slug = %q, want %q", got, want)
	}
}

func TestNewsCreateDuplicateSlugIsFieldError(t *testing.T) {
	app := newTestApp()
	news := app.News.(*fakeNewsRepo)

	body := `{"title":"Annual Report","slug":"annual-report","content":"text"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/news", strings.NewReader(body))
	app.NewsCreate(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/v1/news", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.NewsCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate NewsCreate status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if len(news.created) != 1 {
		t.Fatalf("persisted %d articles after duplicate slug, want 1", len(news.created))
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp.Fields["slug"]; !ok {
		t.Fatalf("fields = %v, want slug named", resp.Fields)
	}
}

func TestNewsBySlugNotFound(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/v1/news/missing", nil)
	rec := httptest.NewRecorder()
	app.NewsBySlug(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("NewsBySlug status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
