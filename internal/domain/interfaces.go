package domain

import "context"

// PostBrowser lists the most recently published posts from the CMS, newest
// first, up to the requested limit.
type PostBrowser interface {
	BrowseRecent(ctx context.Context, limit int) ([]Post, error)
}

// DraftPublisher creates a draft post in the CMS and reports what was
// created.
type DraftPublisher interface {
	PublishDraft(ctx context.Context, draft DraftPost) (CreatedPost, error)
}

// MarkupConverter renders the textual digest into HTML markup.
type MarkupConverter interface {
	Convert(markdown string) (string, error)
}
