// Package validate checks raw submission payloads against per-entity rule
// sets. Validators normalize their input in place (whitespace trimming) and
// return a map of field name to human-readable rejection reason; an empty
// map means the payload is acceptable. Validators never touch storage:
// uniqueness checks against current store state belong to the caller.
package validate

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

// Amount is a raw money value as submitted. Clients send amounts either as
// decimal strings ("499.50") or as JSON numbers (499.50, -5); both decode
// into the raw text and go through ParseAmount.
type Amount string

// UnmarshalJSON accepts a JSON string or number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// Fields maps a field name to the reason its value was rejected.
type Fields map[string]string

// Add records a rejection reason for a field, keeping the first reason when
// a field is reported twice.
func (f Fields) Add(field, reason string) {
	if _, ok := f[field]; !ok {
		f[field] = reason
	}
}

// Valid reports whether no field was rejected.
func (f Fields) Valid() bool { return len(f) == 0 }

func required(f Fields, field, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		f.Add(field, "this field is required")
	}
	return v
}

func email(f Fields, field, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		f.Add(field, "this field is required")
		return v
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v || !strings.Contains(v, "@") {
		f.Add(field, "enter a valid email address")
	}
	return v
}

func maxLen(f Fields, field, value string, limit int) {
	if len(value) > limit {
		f.Add(field, fmt.Sprintf("must be at most %d characters", limit))
	}
}

// ParseAmount converts a decimal money string ("500", "499.50") into minor
// currency units. At most two fraction digits are accepted and the value
// must not be negative.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("amount must not be negative")
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("enter a valid amount")
	}
	var cents int64
	if hasFrac {
		if frac == "" || len(frac) > 2 {
			return 0, fmt.Errorf("enter a valid amount")
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("enter a valid amount")
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}
	if units > (1<<62)/100 {
		return 0, fmt.Errorf("amount is too large")
	}
	return units*100 + cents, nil
}
