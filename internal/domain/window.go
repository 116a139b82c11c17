package domain

import (
	"fmt"
	"time"
)

// PeriodKind selects how wide a digest window is.
type PeriodKind string

const (
	// PeriodDaily covers a single calendar day.
	PeriodDaily PeriodKind = "daily"
	// PeriodWeekly covers the seven calendar days ending on the anchor date.
	PeriodWeekly PeriodKind = "weekly"
)

// DigestWindow is the half-open range of calendar days [Start, End) a post's
// publish day must fall into to be included in a digest. Start and End are
// day identities as returned by CalendarDay; Location is the timezone that
// decides which day an instant belongs to.
type DigestWindow struct {
	Kind     PeriodKind
	Start    time.Time
	End      time.Time
	Location *time.Location
}

// CalendarDay reduces an instant to the calendar day it falls on in loc. The
// day is encoded as a UTC midnight, which exists even on days where loc
// itself skips midnight for a DST change.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t's calendar day, taken in the window's location,
// lies inside the window.
func (w DigestWindow) Contains(t time.Time) bool {
	day := CalendarDay(t, w.Location)
	return !day.Before(w.Start) && day.Before(w.End)
}

// Label renders the human-readable span for the digest title: "M/D" for a
// daily window, "M/D - M/D" for a weekly one. No zero padding.
func (w DigestWindow) Label() string {
	last := w.End.AddDate(0, 0, -1)
	if w.Kind == PeriodWeekly {
		return fmt.Sprintf("%d/%d - %d/%d", int(w.Start.Month()), w.Start.Day(), int(last.Month()), last.Day())
	}
	return fmt.Sprintf("%d/%d", int(w.Start.Month()), w.Start.Day())
}
