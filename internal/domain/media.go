package domain

import "time"

// Podcast is an episode in the media centre, linking out to the hosting
// platform (Spotify, YouTube, Anchor, ...).
type Podcast struct {
	ID          string
	Title       string
	Description string
	Link        string
	CreatedAt   time.Time
}

// Video is a media-centre video entry.
type Video struct {
	ID        string
	Title     string
	URL       *string
	CreatedAt time.Time
}

// PressClipping is a scanned newspaper cutting about the foundation.
type PressClipping struct {
	ID        string
	Title     string
	ImageURL  string
	CreatedAt time.Time
}

// EventPhoto is a photo taken at a foundation event.
type EventPhoto struct {
	ID        string
	ImageURL  string
	CreatedAt time.Time
}

// Review is a testimonial in image or video form.
type Review struct {
	ID        string
	Title     string
	ImageURL  *string
	VideoURL  *string
	CreatedAt time.Time
}
