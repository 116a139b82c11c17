package domain

import "time"

// Tag is a label attached to a post in the CMS.
type Tag struct {
	Name string
}

// Post is a published post fetched from the CMS.
type Post struct {
	ID           string
	Title        string
	Slug         string
	Tags         []Tag
	PublishedAt  time.Time
	FeatureImage string
	HTML         string
	Excerpt      string
	URL          string
}

// HasAnyTag reports whether the post carries at least one tag from the set.
// Matching ignores case and surrounding whitespace; a post without tags
// never matches.
func (p Post) HasAnyTag(names map[string]struct{}) bool {
	if len(p.Tags) == 0 || len(names) == 0 {
		return false
	}
	for _, tag := range p.Tags {
		if _, ok := names[NormalizeTag(tag.Name)]; ok {
			return true
		}
	}
	return false
}

// DraftPost describes the digest draft submitted to the CMS. The body is
// pre-rendered HTML, not the CMS's native rich-text format.
type DraftPost struct {
	Title string
	HTML  string
	Tags  []Tag
}

// CreatedPost identifies the draft the CMS created for a submitted digest.
type CreatedPost struct {
	ID   string
	Slug string
	URL  string
}
