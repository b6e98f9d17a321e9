package domain

import "time"

// Volunteer represents a volunteer signup submitted through the dashboard form.
type Volunteer struct {
	ID           string
	FullName     string
	Email        string
	Phone        *string
	Availability *string
	Message      *string
	IsActive     bool
	CreatedAt    time.Time
}
