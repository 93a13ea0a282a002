package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"worldinfo/pkg/config"
	"worldinfo/pkg/domain"
	"worldinfo/pkg/normalize"
	"worldinfo/pkg/provider"
)

// CountrylayerClient is country provider A: countrylayer.com's v2 name
// lookup, authenticated with an access key.
type CountrylayerClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCountrylayerClient creates a countrylayer client using config.
func NewCountrylayerClient(cfg *config.Countrylayer, logger *slog.Logger) *CountrylayerClient {
	return &CountrylayerClient{
		apiKey:     cfg.ApiKey,
		baseURL:    cfg.ApiUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger.With("provider", "countrylayer"),
	}
}

// Lookup resolves a country by name. A 404 or empty result set is a normal
// no-match and degrades to the NA sentinels.
func (c *CountrylayerClient) Lookup(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
	endpoint := fmt.Sprintf("%s/name/%s?access_key=%s&fullText=true",
		c.baseURL, url.PathEscape(name), url.QueryEscape(c.apiKey))

	var body []normalize.CountrylayerCountry
	if err := getJSON(ctx, c.httpClient, c.Name(), endpoint, &body); err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && ue.Status == http.StatusNotFound {
			c.logger.Debug("no country record", "name", name)
			info := normalize.Country(normalize.CountryPayload{}, name, code)
			return &info, nil
		}
		return nil, err
	}
	if len(body) == 0 {
		info := normalize.Country(normalize.CountryPayload{}, name, code)
		return &info, nil
	}

	info := normalize.Country(normalize.CountryPayload{Countrylayer: &body[0]}, name, code)
	return &info, nil
}

// Name returns the provider's name.
func (c *CountrylayerClient) Name() string { return "countrylayer" }

var _ provider.Country = (*CountrylayerClient)(nil)
