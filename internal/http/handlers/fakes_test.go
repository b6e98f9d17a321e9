package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"foundation/internal/domain"
	"foundation/internal/infra"
	"foundation/internal/payment"
)

// In-memory repository fakes. They capture writes so tests can assert what
// was (or was not) persisted without a database.

type fakeUserRepo struct {
	users     map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return domain.ErrConflict
		}
	}
	cp := *u
	cp.CreatedAt = time.Now()
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UsernameTaken(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeContactRepo struct {
	created []domain.ContactMessage
}

func (f *fakeContactRepo) Create(_ context.Context, m *domain.ContactMessage) error {
	cp := *m
	cp.SubmittedAt = time.Now()
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeContactRepo) ListRecent(_ context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	return f.created, nil
}

type fakeVolunteerRepo struct {
	created []domain.Volunteer
	active  map[string]bool
}

func (f *fakeVolunteerRepo) Create(_ context.Context, v *domain.Volunteer) error {
	cp := *v
	cp.CreatedAt = time.Now()
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeVolunteerRepo) ListRecent(_ context.Context, limit, offset int) ([]domain.Volunteer, error) {
	return f.created, nil
}

func (f *fakeVolunteerRepo) SetActive(_ context.Context, id string, active bool) error {
	for _, v := range f.created {
		if v.ID == id {
			if f.active == nil {
				f.active = map[string]bool{}
			}
			f.active[id] = active
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCampaignRepo struct {
	created []domain.Campaign
	raised  map[string]int64
}

func (f *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	cp := *c
	cp.CreatedAt = time.Now()
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	for _, c := range f.created {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCampaignRepo) ListRecent(_ context.Context, limit, offset int) ([]domain.Campaign, error) {
	return f.created, nil
}

func (f *fakeCampaignRepo) credit(id string, amount int64) {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].RaisedAmount += amount
			if f.raised == nil {
				f.raised = map[string]int64{}
			}
			f.raised[id] += amount
			return
		}
	}
}

type fakeNewsRepo struct {
	created []domain.News
}

func (f *fakeNewsRepo) Create(_ context.Context, n *domain.News) error {
	for _, existing := range f.created {
		if existing.Slug == n.Slug {
			return domain.ErrConflict
		}
	}
	cp := *n
	cp.CreatedAt = time.Now()
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeNewsRepo) GetBySlug(_ context.Context, slug string) (*domain.News, error) {
	for _, n := range f.created {
		if n.Slug == slug {
			cp := n
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNewsRepo) SlugTaken(_ context.Context, slug string) (bool, error) {
	for _, n := range f.created {
		if n.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNewsRepo) ListRecent(_ context.Context, limit, offset int) ([]domain.News, error) {
	return f.created, nil
}

type fakeMediaRepo struct {
	podcasts  []domain.Podcast
	videos    []domain.Video
	clippings []domain.PressClipping
	photos    []domain.EventPhoto
	reviews   []domain.Review
}

func (f *fakeMediaRepo) CreatePodcast(_ context.Context, p *domain.Podcast) error {
	f.podcasts = append(f.podcasts, *p)
	return nil
}

func (f *fakeMediaRepo) ListPodcasts(_ context.Context, limit, offset int) ([]domain.Podcast, error) {
	return f.podcasts, nil
}

func (f *fakeMediaRepo) CreateVideo(_ context.Context, v *domain.Video) error {
	f.videos = append(f.videos, *v)
	return nil
}

func (f *fakeMediaRepo) ListVideos(_ context.Context, limit, offset int) ([]domain.Video, error) {
	return f.videos, nil
}

func (f *fakeMediaRepo) CreatePressClipping(_ context.Context, p *domain.PressClipping) error {
	f.clippings = append(f.clippings, *p)
	return nil
}

func (f *fakeMediaRepo) ListPressClippings(_ context.Context, limit, offset int) ([]domain.PressClipping, error) {
	return f.clippings, nil
}

func (f *fakeMediaRepo) CreateEventPhoto(_ context.Context, p *domain.EventPhoto) error {
	f.photos = append(f.photos, *p)
	return nil
}

func (f *fakeMediaRepo) ListEventPhotos(_ context.Context, limit, offset int) ([]domain.EventPhoto, error) {
	return f.photos, nil
}

func (f *fakeMediaRepo) CreateReview(_ context.Context, r *domain.Review) error {
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeMediaRepo) ListReviews(_ context.Context, limit, offset int) ([]domain.Review, error) {
	return f.reviews, nil
}

type fakeProjectRepo struct {
	created []domain.Project
}

func (f *fakeProjectRepo) Create(_ context.Context, p *domain.Project) error {
	f.created = append(f.created, *p)
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range f.created {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProjectRepo) ListRecent(_ context.Context, limit, offset int) ([]domain.Project, error) {
	return f.created, nil
}

type fakeDonationRepo struct {
	created   []domain.Donation
	paid      map[string]bool
	campaigns *fakeCampaignRepo
	creditErr error
}

func (f *fakeDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	cp := *d
	cp.CreatedAt = time.Now()
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeDonationRepo) GetByOrderID(_ context.Context, orderID string) (*domain.Donation, error) {
	for _, d := range f.created {
		if d.OrderID == orderID {
			cp := d
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ConfirmPaid mirrors the production transaction: when the campaign credit
// fails, the donation stays pending.
func (f *fakeDonationRepo) ConfirmPaid(_ context.Context, id string) error {
	for i := range f.created {
		if f.created[i].ID == id {
			if f.created[i].Status == domain.DonationPaid {
				return domain.ErrConflict
			}
			if f.creditErr != nil {
				return f.creditErr
			}
			f.created[i].Status = domain.DonationPaid
			if f.paid == nil {
				f.paid = map[string]bool{}
			}
			f.paid[id] = true
			if f.created[i].CampaignID != nil && f.campaigns != nil {
				f.campaigns.credit(*f.created[i].CampaignID, f.created[i].Amount)
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeDonationRepo) ListRecent(_ context.Context, limit int) ([]domain.Donation, error) {
	return f.created, nil
}

func (f *fakeDonationRepo) TotalPaid(_ context.Context) (int64, error) {
	var total int64
	for _, d := range f.created {
		if d.Status == domain.DonationPaid {
			total += d.Amount
		}
	}
	return total, nil
}

type fakeGateway struct {
	calls     int
	nextID    string
	lastAmt   int64
	err       error
	unsettled bool
	verifyErr error
	verified  []string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency string, metadata map[string]string) (*payment.Order, error) {
	f.calls++
	f.lastAmt = amount
	if f.err != nil {
		return nil, f.err
	}
	id := f.nextID
	if id == "" {
		id = "order_test_1"
	}
	return &payment.Order{
		OrderID:      id,
		ClientSecret: id + "_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

func (f *fakeGateway) OrderSettled(_ context.Context, orderID string) (bool, error) {
	f.verified = append(f.verified, orderID)
	if f.verifyErr != nil {
		return false, f.verifyErr
	}
	return !f.unsettled, nil
}

func newTestApp() *App {
	campaigns := &fakeCampaignRepo{}
	return &App{
		Logger: zerolog.Nop(),
		Cfg: &infra.Config{
			AppEnv:     "development",
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			LoginPath:  "/v1/auth/login",
		},
		Users:      newFakeUserRepo(),
		Contacts:   &fakeContactRepo{},
		Volunteers: &fakeVolunteerRepo{},
		Campaigns:  campaigns,
		News:       &fakeNewsRepo{},
		Media:      &fakeMediaRepo{},
		Projects:   &fakeProjectRepo{},
		Donations:  &fakeDonationRepo{campaigns: campaigns},
	}
}
