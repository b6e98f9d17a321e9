package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"foundation/internal/adapter/repo"
	"foundation/internal/domain"
	"foundation/internal/infra"
	"foundation/internal/infra/geoip"
	"foundation/internal/middleware"
	"foundation/internal/payment"
	"foundation/internal/validate"
)

// App is the handler container: repositories, collaborators and config are
// injected once at startup and shared by all request handlers.
type App struct {
	Logger zerolog.Logger
	Cfg    *infra.Config

	Users      domain.UserRepository
	Contacts   domain.ContactMessageRepository
	Volunteers domain.VolunteerRepository
	Campaigns  domain.CampaignRepository
	News       domain.NewsRepository
	Media      domain.MediaRepository
	Projects   domain.ProjectRepository
	Donations  domain.DonationRepository

	Gateway payment.Gateway
	Geo     geoip.CountryResolver
}

// NewApp wires the pgx-backed repositories into an App.
func NewApp(cfg *infra.Config, logger zerolog.Logger, pool *pgxpool.Pool, gateway payment.Gateway, geo geoip.CountryResolver) *App {
	return &App{
		Logger:     logger,
		Cfg:        cfg,
		Users:      repo.NewUserRepository(pool),
		Contacts:   repo.NewContactMessageRepository(pool),
		Volunteers: repo.NewVolunteerRepository(pool),
		Campaigns:  repo.NewCampaignRepository(pool),
		News:       repo.NewNewsRepository(pool),
		Media:      repo.NewMediaRepository(pool),
		Projects:   repo.NewProjectRepository(pool),
		Donations:  repo.NewDonationRepository(pool),
		Gateway:    gateway,
		Geo:        geo,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": code, "message": message})
}

// fieldErrors reports per-field validation reasons. Nothing was persisted.
func (a *App) fieldErrors(w http.ResponseWriter, fields validate.Fields) {
	a.json(w, http.StatusUnprocessableEntity, map[string]any{
		"error":   "validation_failed",
		"message": "please correct the errors in the form",
		"fields":  fields,
	})
}

// storeError logs a store-write failure and reports a generic error to the
// caller. Failures are terminal for the request; nothing is retried.
func (a *App) storeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	a.Logger.Error().
		Err(err).
		Str("action", action).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("store write failed")
	a.error(w, http.StatusInternalServerError, "internal", "something went wrong, please try again")
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// optional converts a form value to a nullable column value: empty after
// trimming means NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// formatAmount renders minor currency units as a decimal string ("49950"
// -> "499.50").
func formatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return sign + strconv.FormatInt(minor/100, 10) + "." + pad2(minor%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func listParams(r *http.Request, defaultLimit int) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
