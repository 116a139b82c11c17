package ghost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/leluso/ghost-digest/internal/domain"
)

const (
	adminPostsPath = "/ghost/api/admin/posts/"
	acceptVersion  = "v5.0"
)

// HTTPClient issues HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithNow overrides the clock used when minting auth tokens.
func WithNow(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// Client talks to the Ghost Admin API of one site.
type Client struct {
	http    HTTPClient
	baseURL string
	key     AdminKey
	now     func() time.Time
}

var (
	_ domain.PostBrowser    = (*Client)(nil)
	_ domain.DraftPublisher = (*Client)(nil)
)

// NewClient builds an Admin API client for one Ghost site.
func NewClient(baseURL, adminKey string, timeout time.Duration, opts ...ClientOption) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("ghost: invalid site url %q", baseURL)
	}
	key, err := ParseAdminKey(adminKey)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BrowseRecent lists published posts newest first, with tags and rendered html
// included.
func (c *Client) BrowseRecent(ctx context.Context, limit int) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("formats", "html")
	q.Set("include", "tags")
	q.Set("filter", "status:published")
	q.Set("order", "published_at desc")
	q.Set("limit", strconv.Itoa(limit))

	var resp postsResponse
	if err := c.do(ctx, http.MethodGet, adminPostsPath+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, 0, len(resp.Posts))
	for _, wp := range resp.Posts {
		post, err := wp.toDomain()
		if err != nil {
			return nil, fmt.Errorf("ghost: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// PublishDraft creates a draft post from already-rendered html.
func (c *Client) PublishDraft(ctx context.Context, draft domain.DraftPost) (domain.CreatedPost, error) {
	tags := make([]wireTag, 0, len(draft.Tags))
	for _, t := range draft.Tags {
		tags = append(tags, wireTag{Name: t.Name})
	}
	body, err := json.Marshal(createPostsRequest{Posts: []createPost{{
		Title:  draft.Title,
		HTML:   draft.HTML,
		Tags:   tags,
		Status: "draft",
	}}})
	if err != nil {
		return domain.CreatedPost{}, fmt.Errorf("ghost: marshal draft: %w", err)
	}

	var resp postsResponse
	if err := c.do(ctx, http.MethodPost, adminPostsPath+"?source=html", body, &resp); err != nil {
		return domain.CreatedPost{}, err
	}
	if len(resp.Posts) == 0 {
		return domain.CreatedPost{}, fmt.Errorf("ghost: create returned no posts")
	}
	created := resp.Posts[0]
	return domain.CreatedPost{ID: created.ID, Slug: created.Slug, URL: created.URL}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	token, err := c.key.Token(c.now())
	if err != nil {
		return err
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("ghost: build request: %w", err)
	}
	req.Header.Set("Authorization", "Ghost "+token)
	req.Header.Set("Accept-Version", acceptVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ghost: do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ghost: read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var apiErr apiErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && len(apiErr.Errors) > 0 && apiErr.Errors[0].Message != "" {
			return fmt.Errorf("ghost: %s", apiErr.Errors[0].Message)
		}
		return fmt.Errorf("ghost: unexpected status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("ghost: decode response: %w", err)
	}
	return nil
}
