package ghost

import (
	"fmt"
	"time"

	"github.com/leluso/ghost-digest/internal/domain"
)

// postsResponse is the Admin API envelope for both browse and create.
type postsResponse struct {
	Posts []wirePost `json:"posts"`
}

// wirePost is a post exactly as the Admin API returns it.
type wirePost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	HTML          string    `json:"html"`
	CustomExcerpt string    `json:"custom_excerpt"`
	Excerpt       string    `json:"excerpt"`
	FeatureImage  string    `json:"feature_image"`
	URL           string    `json:"url"`
	PublishedAt   string    `json:"published_at"`
	Tags          []wireTag `json:"tags"`
}

type wireTag struct {
	Name string `json:"name"`
}

// toDomain validates the wire post and converts it. Posts without a parseable
// published_at are rejected instead of being carried with a zero time.
func (p wirePost) toDomain() (domain.Post, error) {
	if p.PublishedAt == "" {
		return domain.Post{}, fmt.Errorf("post %q has empty published_at", p.Slug)
	}
	publishedAt, err := time.Parse(time.RFC3339, p.PublishedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post %q: parse published_at: %w", p.Slug, err)
	}
	excerpt := p.CustomExcerpt
	if excerpt == "" {
		excerpt = p.Excerpt
	}
	tags := make([]domain.Tag, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, domain.Tag{Name: t.Name})
	}
	return domain.Post{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Tags:         tags,
		PublishedAt:  publishedAt,
		FeatureImage: p.FeatureImage,
		HTML:         p.HTML,
		Excerpt:      excerpt,
		URL:          p.URL,
	}, nil
}

// createPostsRequest is the body of a create-post call.
type createPostsRequest struct {
	Posts []createPost `json:"posts"`
}

type createPost struct {
	Title  string    `json:"title"`
	HTML   string    `json:"html"`
	Tags   []wireTag `json:"tags,omitempty"`
	Status string    `json:"status"`
}

type apiErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"errors"`
}
