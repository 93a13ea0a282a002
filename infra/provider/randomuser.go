package provider

import (
	"context"
	"log/slog"
	"net/http"

	"worldinfo/pkg/config"
	"worldinfo/pkg/domain"
	"worldinfo/pkg/normalize"
	"worldinfo/pkg/provider"
)

// RandomUserClient fetches a random person from randomuser.me.
type RandomUserClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type randomUserResponse struct {
	Results []normalize.RandomUserResult `json:"results"`
}

// NewRandomUserClient creates a randomuser.me client using config.
func NewRandomUserClient(cfg *config.RandomUser, logger *slog.Logger) *RandomUserClient {
	return &RandomUserClient{
		baseURL:    cfg.ApiUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger.With("provider", "randomuser"),
	}
}

// Fetch retrieves one random person and normalizes it.
func (c *RandomUserClient) Fetch(ctx context.Context) (*domain.PersonInfo, error) {
	var body randomUserResponse
	if err := getJSON(ctx, c.httpClient, c.Name(), c.baseURL, &body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, &domain.UpstreamError{Provider: c.Name(), Message: "response contained no results"}
	}

	person, err := normalize.Person(body.Results[0])
	if err != nil {
		return nil, &domain.UpstreamError{Provider: c.Name(), Message: "unexpected payload shape", Err: err}
	}
	c.logger.Debug("fetched random person", "country", person.CountryName, "code", person.CountryCode)
	return person, nil
}

// Name returns the provider's name.
func (c *RandomUserClient) Name() string { return "randomuser" }

var _ provider.Person = (*RandomUserClient)(nil)
