package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"worldinfo/pkg/config"
	"worldinfo/pkg/domain"
	"worldinfo/pkg/normalize"
	"worldinfo/pkg/provider"
)

// NewsAPIClient fetches articles from newsapi.org. The key travels in the
// X-Api-Key header so it never appears in logged URLs.
type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

type newsAPIResponse struct {
	Status   string              `json:"status"`
	Code     string              `json:"code,omitempty"`
	Message  string              `json:"message,omitempty"`
	Articles []normalize.Article `json:"articles"`
}

// NewNewsAPIClient creates a NewsAPI client using config.
func NewNewsAPIClient(cfg *config.NewsApi, logger *slog.Logger) *NewsAPIClient {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > normalize.MaxNewsItems {
		pageSize = normalize.MaxNewsItems
	}
	return &NewsAPIClient{
		apiKey:     cfg.ApiKey,
		baseURL:    cfg.ApiUrl,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger.With("provider", "newsapi"),
	}
}

// TopStories fetches up to five articles matching query, upstream order kept.
func (c *NewsAPIClient) TopStories(ctx context.Context, query string) ([]domain.NewsItem, error) {
	endpoint := fmt.Sprintf("%s/everything?q=%s&pageSize=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(c.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Provider: c.Name(), Message: "failed to create request", Err: err}
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	var body newsAPIResponse
	if err := doJSON(c.httpClient, c.Name(), req, &body); err != nil {
		return nil, err
	}
	if body.Status != "ok" {
		return nil, &domain.UpstreamError{
			Provider: c.Name(),
			Message:  fmt.Sprintf("upstream reported %q: %s", body.Code, body.Message),
		}
	}

	items := normalize.News(body.Articles)
	c.logger.Debug("fetched news", "query", query, "count", len(items))
	return items, nil
}

// Name returns the provider's name.
func (c *NewsAPIClient) Name() string { return "newsapi" }

var _ provider.News = (*NewsAPIClient)(nil)
