package domain

import "time"

// ContactMessage represents a message submitted through the contact form.
type ContactMessage struct {
	ID          string
	Name        string
	Email       string
	Subject     *string
	Message     string
	SubmittedAt time.Time
}
