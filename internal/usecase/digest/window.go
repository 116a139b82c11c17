package digest

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/leluso/ghost-digest/internal/domain"
)

// ErrInvalidPeriod is returned for period values that are neither a known
// keyword nor a YYYY-MM-DD date.
var ErrInvalidPeriod = errors.New("period must be daily, weekly or a YYYY-MM-DD date")

const anchorDateLayout = "2006-01-02"

// ResolveWindow turns a period setting into a half-open window of calendar
// days in the given location. "daily" covers the current day, "weekly" the
// current day plus the six days before it, and an explicit YYYY-MM-DD date
// acts like "daily" anchored on that date. Anything else is a configuration
// error.
func ResolveWindow(period string, now time.Time, loc *time.Location) (domain.DigestWindow, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "daily":
		anchor := domain.CalendarDay(now, loc)
		return domain.DigestWindow{Kind: domain.PeriodDaily, Start: anchor, End: anchor.AddDate(0, 0, 1), Location: loc}, nil
	case "weekly":
		anchor := domain.CalendarDay(now, loc)
		return domain.DigestWindow{Kind: domain.PeriodWeekly, Start: anchor.AddDate(0, 0, -6), End: anchor.AddDate(0, 0, 1), Location: loc}, nil
	}
	// Parsed without a zone the date is already a UTC midnight, the encoding
	// CalendarDay uses for day identities.
	anchor, err := time.Parse(anchorDateLayout, strings.TrimSpace(period))
	if err != nil {
		return domain.DigestWindow{}, fmt.Errorf("%w, got %q", ErrInvalidPeriod, period)
	}
	return domain.DigestWindow{Kind: domain.PeriodDaily, Start: anchor, End: anchor.AddDate(0, 0, 1), Location: loc}, nil
}

// FilterByWindow keeps posts whose publication day falls inside the window.
// The day is taken in the window's location, not the post's own offset.
func FilterByWindow(posts []domain.Post, window domain.DigestWindow) []domain.Post {
	kept := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if window.Contains(post.PublishedAt) {
			kept = append(kept, post)
		}
	}
	return kept
}

// ExcludeTagged drops posts carrying any of the excluded tags. Posts without
// tags are always kept.
func ExcludeTagged(posts []domain.Post, excluded []string) []domain.Post {
	set := domain.TagSet(excluded)
	if len(set) == 0 {
		return posts
	}
	kept := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if post.HasAnyTag(set) {
			continue
		}
		kept = append(kept, post)
	}
	return kept
}

// SortChronological orders posts oldest first, keeping the incoming order
// for posts published at the same instant.
func SortChronological(posts []domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.Before(posts[j].PublishedAt)
	})
}
