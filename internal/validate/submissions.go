package validate

import "strings"

// ContactInput carries the raw contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact validates and normalizes a contact form submission.
func Contact(in *ContactInput) Fields {
	f := Fields{}
	in.Name = required(f, "name", in.Name)
	maxLen(f, "name", in.Name, 100)
	in.Email = email(f, "email", in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	maxLen(f, "subject", in.Subject, 200)
	in.Message = required(f, "message", in.Message)
	return f
}

// VolunteerInput carries the raw volunteer signup payload.
type VolunteerInput struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Availability string `json:"availability"`
	Message      string `json:"message"`
}

// Volunteer validates and normalizes a volunteer signup.
func Volunteer(in *VolunteerInput) Fields {
	f := Fields{}
	in.FullName = required(f, "full_name", in.FullName)
	maxLen(f, "full_name", in.FullName, 100)
	in.Email = email(f, "email", in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	maxLen(f, "phone", in.Phone, 20)
	in.Availability = strings.TrimSpace(in.Availability)
	maxLen(f, "availability", in.Availability, 50)
	in.Message = strings.TrimSpace(in.Message)
	return f
}

// CampaignInput carries the raw campaign creation payload. GoalAmount is the
// decimal value as submitted, string or number.
type CampaignInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GoalAmount  Amount `json:"goal_amount"`
}

// Campaign validates and normalizes a campaign submission, returning the
// goal in minor currency units.
func Campaign(in *CampaignInput) (int64, Fields) {
	f := Fields{}
	in.Title = required(f, "title", in.Title)
	maxLen(f, "title", in.Title, 200)
	in.Description = required(f, "description", in.Description)
	goal, err := ParseAmount(string(in.GoalAmount))
	if err != nil {
		f.Add("goal_amount", err.Error())
	}
	return goal, f
}

// SignupInput carries the raw signup payload.
type SignupInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Signup validates and normalizes an account signup. Uniqueness of the
// username against the store is the caller's concern.
func Signup(in *SignupInput) Fields {
	f := Fields{}
	in.Username = required(f, "username", in.Username)
	maxLen(f, "username", in.Username, 150)
	if in.Username != "" && strings.ContainsAny(in.Username, " \t") {
		f.Add("username", "username must not contain spaces")
	}
	if len(in.Password) < 8 {
		f.Add("password", "password must be at least 8 characters")
	}
	in.Email = email(f, "email", in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	maxLen(f, "first_name", in.FirstName, 30)
	in.LastName = strings.TrimSpace(in.LastName)
	maxLen(f, "last_name", in.LastName, 150)
	return f
}

// NewsInput carries the raw news article payload. An empty slug is derived
// from the title.
type NewsInput struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Link    string `json:"link"`
}

// News validates and normalizes a news article submission.
func News(in *NewsInput) Fields {
	f := Fields{}
	in.Title = required(f, "title", in.Title)
	maxLen(f, "title", in.Title, 200)
	in.Content = required(f, "content", in.Content)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Link = strings.TrimSpace(in.Link)
	return f
}

// DonationInput carries the raw donation payload. Amount is the decimal
// value as submitted, string or number; CampaignID optionally ties the
// donation to a campaign.
type DonationInput struct {
	Amount     Amount `json:"amount"`
	Currency   string `json:"currency"`
	CampaignID string `json:"campaign_id"`
}

// Donation validates a donation request, returning the amount in minor
// currency units. Unlike campaign goals, a donation must be strictly
// positive: the payment gateway is never called for a zero amount.
func Donation(in *DonationInput) (int64, Fields) {
	f := Fields{}
	amount, err := ParseAmount(string(in.Amount))
	if err != nil {
		f.Add("amount", err.Error())
	} else if amount <= 0 {
		f.Add("amount", "enter a positive donation amount")
	}
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = "INR"
	}
	if len(in.Currency) != 3 {
		f.Add("currency", "enter a three-letter currency code")
	}
	in.CampaignID = strings.TrimSpace(in.CampaignID)
	return amount, f
}
