package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lawsa-dev/portal-api/internal/config"
	"github.com/lawsa-dev/portal-api/internal/models"
)

// Client reads published articles from the headless CMS. Implementations
// must be safe for concurrent use.
type Client interface {
	ListPosts(ctx context.Context, limit int) ([]*models.NewsPost, error)
	GetPost(ctx context.Context, slug string) (*models.NewsPost, error)
}

// HTTPClient talks to the CMS delivery API over JSON. The portal never
// writes to the CMS; content is authored in its own dashboard.
type HTTPClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a CMS client from configuration.
func NewHTTPClient(cfg config.NewsConfig, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:  cfg.APIURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// ListPosts returns published posts, newest first. A non-positive limit
// leaves pagination to the CMS default.
func (c *HTTPClient) ListPosts(ctx context.Context, limit int) ([]*models.NewsPost, error) {
	endpoint := c.baseURL + "/posts"
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}

	var posts []*models.NewsPost
	if err := c.get(ctx, endpoint, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost fetches a single post by slug. Returns ErrNotFound when the CMS
// has no published post with that slug.
func (c *HTTPClient) GetPost(ctx context.Context, slug string) (*models.NewsPost, error) {
	endpoint := c.baseURL + "/posts/" + url.PathEscape(slug)

	var post models.NewsPost
	if err := c.get(ctx, endpoint, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build CMS request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("CMS request failed", slog.Any("error", err))
		return models.ErrUpstream
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("CMS returned unexpected status", slog.Int("status", resp.StatusCode))
		return models.ErrUpstream
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode CMS response", slog.Any("error", err))
		return models.ErrUpstream
	}

	return nil
}
