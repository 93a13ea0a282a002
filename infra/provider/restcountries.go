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

// RESTCountriesClient is country provider B: restcountries.com v3.1. It
// needs no credential and is the default when no countrylayer key is set.
type RESTCountriesClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRESTCountriesClient creates a restcountries client using config.
func NewRESTCountriesClient(cfg *config.RESTCountries, logger *slog.Logger) *RESTCountriesClient {
	return &RESTCountriesClient{
		baseURL:    cfg.ApiUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger.With("provider", "restcountries"),
	}
}

// Lookup resolves a country by name. restcountries answers 404 for unknown
// names; that is a normal no-match, not an upstream failure.
func (c *RESTCountriesClient) Lookup(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
	endpoint := fmt.Sprintf("%s/name/%s?fullText=true", c.baseURL, url.PathEscape(name))

	var body []normalize.RESTCountry
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

	info := normalize.Country(normalize.CountryPayload{RESTCountry: &body[0]}, name, code)
	return &info, nil
}

// Name returns the provider's name.
func (c *RESTCountriesClient) Name() string { return "restcountries" }

var _ provider.Country = (*RESTCountriesClient)(nil)
