package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestI18NLocaleResolution(t *testing.T) {
	tests := []struct {
		name           string
		xLocale        string
		acceptLanguage string
		lookup         CountryLookup
		wantLocale     string
		wantCountry    string
	}{
		{
			name:       "explicit header wins",
			xLocale:    "hi-IN",
			wantLocale: "hi",
		},
		{
			name:           "accept language hindi",
			acceptLanguage: "hi-IN,hi;q=0.9,en;q=0.8",
			wantLocale:     "hi",
		},
		{
			name:           "accept language english",
			acceptLanguage: "en-GB,en;q=0.9",
			wantLocale:     "en",
		},
		{
			name:        "indian ip defaults to hindi",
			lookup:      func(ip string) (string, error) { return "IN", nil },
			wantLocale:  "hi",
			wantCountry: "IN",
		},
		{
			name:        "other country keeps default",
			lookup:      func(ip string) (string, error) { return "US", nil },
			wantLocale:  "en",
			wantCountry: "US",
		},
		{
			name:       "lookup failure keeps default",
			lookup:     func(ip string) (string, error) { return "", errors.New("db unavailable") },
			wantLocale: "en",
		},
		{
			name:       "no signals at all",
			wantLocale: "en",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctx context.Context
			handler := I18N("en", tt.lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx = r.Context()
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.1:1000"
			if tt.xLocale != "" {
				req.Header.Set("X-Locale", tt.xLocale)
			}
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got := LocaleFromContext(ctx); got != tt.wantLocale {
				t.Fatalf("locale = %q, want %q", got, tt.wantLocale)
			}
			if got := CountryFromContext(ctx); got != tt.wantCountry {
				t.Fatalf("country = %q, want %q", got, tt.wantCountry)
			}
		})
	}
}
