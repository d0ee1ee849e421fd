package announcement

import "time"

// Announcement is marketing content served by GET /api/announcements. The
// optional window bounds are checked client-side so an announcement can expire
// between polls.
type Announcement struct {
	ID       string
	Text     string
	Href     string
	Active   bool
	StartsAt *time.Time
	EndsAt   *time.Time
}

func (a Announcement) ActiveAt(t time.Time) bool {
	if !a.Active {
		return false
	}
	if a.StartsAt != nil && a.StartsAt.After(t) {
		return false
	}
	if a.EndsAt != nil && a.EndsAt.Before(t) {
		return false
	}
	return true
}
