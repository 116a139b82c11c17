package digest

import (
	"fmt"
	"strings"

	"github.com/leluso/ghost-digest/internal/domain"
)

// RenderDigest builds the markdown body of a digest, one block per post in
// the given order. An empty post list renders to an empty body.
func RenderDigest(posts []domain.Post, fullArticle bool) string {
	if len(posts) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(posts))
	for _, post := range posts {
		blocks = append(blocks, renderPost(post, fullArticle))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// renderPost renders one digest block. The date is formatted in the post's
// own offset, as the CMS reported it.
func renderPost(post domain.Post, fullArticle bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", post.Title)
	fmt.Fprintf(&b, "%s\n", post.PublishedAt.Format(anchorDateLayout))
	if post.FeatureImage != "" {
		fmt.Fprintf(&b, "\n![%s](%s)\n", post.Title, post.FeatureImage)
	}
	if fullArticle {
		if body := strings.TrimSpace(post.HTML); body != "" {
			b.WriteString("\n" + body + "\n")
		}
		fmt.Fprintf(&b, "\n[View article](%s)", post.URL)
		return b.String()
	}
	if excerpt := strings.TrimSpace(post.Excerpt); excerpt != "" {
		fmt.Fprintf(&b, "\n%s...\n", excerpt)
	}
	fmt.Fprintf(&b, "\n[Read more](%s)", post.URL)
	return b.String()
}

// DigestTitle combines the configured title with the window label. An empty
// title falls back to "Daily Digest" or "Weekly Digest" by period.
func DigestTitle(configured string, window domain.DigestWindow) string {
	title := strings.TrimSpace(configured)
	if title == "" {
		title = defaultTitle(window.Kind)
	}
	return fmt.Sprintf("%s (%s)", title, window.Label())
}

func defaultTitle(kind domain.PeriodKind) string {
	if kind == domain.PeriodWeekly {
		return "Weekly Digest"
	}
	return "Daily Digest"
}
