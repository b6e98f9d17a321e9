package domain

import "time"

// DonationStatus enumerates the lifecycle of a donation.
type DonationStatus string

const (
	DonationPending DonationStatus = "pending"
	DonationPaid    DonationStatus = "paid"
)

// Donation represents a supporter contribution. Amount is in minor currency
// units; OrderID is the handle returned by the payment gateway.
type Donation struct {
	ID           string
	UserID       *string
	CampaignID   *string
	Amount       int64
	Currency     string
	OrderID      string
	Status       DonationStatus
	DonorCountry *string
	CreatedAt    time.Time
}
