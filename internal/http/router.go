package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"foundation/internal/http/handlers"
	"foundation/internal/middleware"
)

// NewRouter wires every route with the shared middleware chain. Routes that
// need an authenticated identity sit behind the session gate.
func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Cfg.CORSOrigins),
		middleware.RateLimit(app.Cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(app.Cfg.DefaultLocale, countryLookup(app)),
	)

	requireUser := middleware.RequireUser([]byte(app.Cfg.JWTSecret), app.Cfg.LoginPath)

	r.Get("/v1/healthz", app.Health)

	// Public submission forms.
	r.Post("/v1/contact", app.ContactCreate)
	r.Post("/v1/volunteers", app.VolunteerCreate)

	// Auth.
	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", app.Signup)
		r.Post("/login", app.Login)
		r.Post("/logout", app.Logout)
	})

	// Public reads for the presentation layer.
	r.Get("/v1/campaigns", app.CampaignsList)
	r.Get("/v1/news", app.NewsList)
	r.Get("/v1/news/{slug}", app.NewsBySlug)
	r.Get("/v1/podcasts", app.PodcastsList)
	r.Get("/v1/videos", app.VideosList)
	r.Get("/v1/press-clippings", app.PressClippingsList)
	r.Get("/v1/event-photos", app.EventPhotosList)
	r.Get("/v1/reviews", app.ReviewsList)
	r.Get("/v1/projects", app.ProjectsList)
	r.Get("/v1/projects/{id}", app.ProjectByID)

	// Donations: order creation is open to anonymous supporters; the
	// confirmation callback comes from the payment collaborator.
	r.Post("/v1/donations", app.DonationCreate)
	r.Post("/v1/payments/confirm", app.PaymentConfirm)

	// Gated: dashboard, campaign creation, administration.
	r.Group(func(r chi.Router) {
		r.Use(requireUser)
		r.Get("/v1/me", app.Me)
		r.Get("/v1/dashboard", app.Dashboard)
		r.Post("/v1/campaigns", app.CampaignCreate)
		r.Get("/v1/volunteers", app.VolunteersList)
		r.Patch("/v1/volunteers/{id}/active", app.VolunteerSetActive)
		r.Get("/v1/contact-messages", app.ContactMessagesList)
		r.Post("/v1/news", app.NewsCreate)
		r.Post("/v1/podcasts", app.PodcastCreate)
		r.Post("/v1/videos", app.VideoCreate)
		r.Post("/v1/press-clippings", app.PressClippingCreate)
		r.Post("/v1/event-photos", app.EventPhotoCreate)
		r.Post("/v1/reviews", app.ReviewCreate)
		r.Post("/v1/projects", app.ProjectCreate)
	})

	return r
}

func countryLookup(app *handlers.App) middleware.CountryLookup {
	if app.Geo == nil {
		return nil
	}
	return app.Geo.CountryCode
}
