package domain

import "context"

// UserRepository defines access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// ContactMessageRepository handles persistence for contact form submissions.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	ListRecent(ctx context.Context, limit, offset int) ([]ContactMessage, error)
}

// VolunteerRepository handles persistence for volunteer signups.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	ListRecent(ctx context.Context, limit, offset int) ([]Volunteer, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// CampaignRepository handles persistence for fundraising campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id string) (*Campaign, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Campaign, error)
}

// NewsRepository handles persistence for news articles.
type NewsRepository interface {
	Create(ctx context.Context, n *News) error
	GetBySlug(ctx context.Context, slug string) (*News, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	ListRecent(ctx context.Context, limit, offset int) ([]News, error)
}

// MediaRepository handles persistence for the media-centre entities.
type MediaRepository interface {
	CreatePodcast(ctx context.Context, p *Podcast) error
	ListPodcasts(ctx context.Context, limit, offset int) ([]Podcast, error)
	CreateVideo(ctx context.Context, v *Video) error
	ListVideos(ctx context.Context, limit, offset int) ([]Video, error)
	CreatePressClipping(ctx context.Context, p *PressClipping) error
	ListPressClippings(ctx context.Context, limit, offset int) ([]PressClipping, error)
	CreateEventPhoto(ctx context.Context, p *EventPhoto) error
	ListEventPhotos(ctx context.Context, limit, offset int) ([]EventPhoto, error)
	CreateReview(ctx context.Context, r *Review) error
	ListReviews(ctx context.Context, limit, offset int) ([]Review, error)
}

// ProjectRepository handles persistence for foundation projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Project, error)
}

// DonationRepository handles persistence for donations.
type DonationRepository interface {
	Create(ctx context.Context, d *Donation) error
	GetByOrderID(ctx context.Context, orderID string) (*Donation, error)
	// ConfirmPaid flips a pending donation to paid and credits the target
	// campaign's raised amount in the same transaction. Returns ErrConflict
	// when the donation is not pending.
	ConfirmPaid(ctx context.Context, id string) error
	ListRecent(ctx context.Context, limit int) ([]Donation, error)
	TotalPaid(ctx context.Context) (int64, error)
}
