// Package diary holds the diary domain: emotions, entries, retrospects and
// the in-memory store the pages read from.
package diary

import "time"

// DateLayout is how dates are shown across the app, e.g. "2024. 03. 12".
const DateLayout = "2006. 01. 02"

// Diary is a single journal entry.
type Diary struct {
	ID        int
	Emotion   Emotion
	Title     string
	Content   string
	CreatedAt time.Time
	Image     string
}

// Date formats CreatedAt for display.
func (d Diary) Date() string { return FormatDate(d.CreatedAt) }

// ImageURL returns the card image, falling back to the emotion artwork.
func (d Diary) ImageURL() string {
	if d.Image != "" {
		return d.Image
	}
	return "/images/" + d.Emotion.MediumImage()
}

// Retrospect is a short reflection appended to a diary later on.
type Retrospect struct {
	ID        string
	Content   string
	CreatedAt time.Time
}

// Date formats CreatedAt for display.
func (r Retrospect) Date() string { return FormatDate(r.CreatedAt) }

// FormatDate renders t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
