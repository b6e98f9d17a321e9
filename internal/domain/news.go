package domain

import (
	"strings"
	"time"
	"unicode"
)

// News is a news article published by the foundation. Slug is unique across
// all articles.
type News struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Link      *string
	CreatedAt time.Time
}

// Slugify derives a URL-safe slug from a title: lowercase, ASCII letters and
// digits, words joined by single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
