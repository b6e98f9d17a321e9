package domain

import "time"

// Campaign is a fundraising initiative owned by one user. Amounts are held
// in minor currency units (paise); raised may exceed goal.
type Campaign struct {
	ID           string
	OwnerID      string
	Title        string
	Description  string
	GoalAmount   int64
	RaisedAmount int64
	CreatedAt    time.Time
}

// ProgressPercent reports how far the campaign is towards its goal.
func (c Campaign) ProgressPercent() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	return float64(c.RaisedAmount) / float64(c.GoalAmount) * 100
}
