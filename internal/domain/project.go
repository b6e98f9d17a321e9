package domain

import "time"

// Project is a foundation initiative shown on the home and projects pages.
type Project struct {
	ID          string
	Title       string
	Description string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
