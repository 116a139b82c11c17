package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/leluso/ghost-digest/internal/domain"
)

// recentPostLimit bounds how far back one browse call looks.
const recentPostLimit = 200

// Options carries the settings of one digest run.
type Options struct {
	Period       string
	Tags         []string
	ExcludedTags []string
	Timezone     string
	Title        string
	FullArticle  bool
	DryRun       bool
}

// Report summarizes a finished run.
type Report struct {
	Window   domain.DigestWindow
	Fetched  int
	Kept     int
	Title    string
	Markdown string
	DryRun   bool
	Created  domain.CreatedPost
}

// Runner executes one digest run.
type Runner interface {
	Run(ctx context.Context, opts Options) (Report, error)
}

// Service builds digest drafts out of recently published posts.
type Service struct {
	browser   domain.PostBrowser
	publisher domain.DraftPublisher
	converter domain.MarkupConverter
	log       zerolog.Logger
	now       func() time.Time
}

var _ Runner = (*Service)(nil)

// NewService wires the digest pipeline.
func NewService(browser domain.PostBrowser, publisher domain.DraftPublisher, converter domain.MarkupConverter, log zerolog.Logger) *Service {
	return &Service{browser: browser, publisher: publisher, converter: converter, log: log, now: time.Now}
}

// Run executes one digest pass: resolve the window, browse recent posts,
// filter and order them, render the body and create the draft. Any failure
// aborts the run without creating a draft.
func (s *Service) Run(ctx context.Context, opts Options) (Report, error) {
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return Report{}, fmt.Errorf("load timezone %q: %w", opts.Timezone, err)
	}
	window, err := ResolveWindow(opts.Period, s.now(), loc)
	if err != nil {
		return Report{}, err
	}
	s.log.Debug().
		Str("kind", string(window.Kind)).
		Time("start", window.Start).
		Time("end", window.End).
		Msg("window resolved")

	posts, err := s.browser.BrowseRecent(ctx, recentPostLimit)
	if err != nil {
		return Report{}, fmt.Errorf("browse posts: %w", err)
	}

	kept := FilterByWindow(posts, window)
	kept = ExcludeTagged(kept, opts.ExcludedTags)
	SortChronological(kept)
	s.log.Info().Int("fetched", len(posts)).Int("kept", len(kept)).Msg("posts filtered")
	if len(kept) == 0 {
		s.log.Warn().Msg("no posts in window, digest body will be empty")
	}

	body := RenderDigest(kept, opts.FullArticle)
	html, err := s.converter.Convert(body)
	if err != nil {
		return Report{}, fmt.Errorf("convert digest: %w", err)
	}

	title := DigestTitle(opts.Title, window)
	report := Report{
		Window:   window,
		Fetched:  len(posts),
		Kept:     len(kept),
		Title:    title,
		Markdown: body,
		DryRun:   opts.DryRun,
	}
	if opts.DryRun {
		s.log.Info().Str("title", title).Msg("dry run, skipping draft creation")
		return report, nil
	}

	created, err := s.publisher.PublishDraft(ctx, domain.DraftPost{
		Title: title,
		HTML:  html,
		Tags:  draftTags(opts.Tags),
	})
	if err != nil {
		return Report{}, fmt.Errorf("publish draft: %w", err)
	}
	report.Created = created
	return report, nil
}

func draftTags(names []string) []domain.Tag {
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tags = append(tags, domain.Tag{Name: name})
	}
	return tags
}
