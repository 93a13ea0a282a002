package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"worldinfo/pkg/config"
	"worldinfo/pkg/domain"
	"worldinfo/pkg/normalize"
	"worldinfo/pkg/provider"
)

// ExchangeRateClient fetches rates from the exchangerate-api.com v6 endpoint.
type ExchangeRateClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// exchangeRateResponseV6 is the v6 response envelope.
// See: https://www.exchangerate-api.com/docs/standard-requests
type exchangeRateResponseV6 struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type,omitempty"`
}

// NewExchangeRateClient creates an exchangerate-api client using config.
func NewExchangeRateClient(cfg *config.ExchangeRateApi, logger *slog.Logger) *ExchangeRateClient {
	return &ExchangeRateClient{
		apiKey:     cfg.ApiKey,
		baseURL:    cfg.ApiUrl,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger.With("provider", "exchangerate-api"),
	}
}

// Rates fetches the full rates table for base and extracts USD and KZT.
func (c *ExchangeRateClient) Rates(ctx context.Context, base string) (*domain.ExchangeInfo, error) {
	base = strings.ToUpper(base)
	endpoint := fmt.Sprintf("%s/latest/%s", c.baseURL, url.PathEscape(base))
	if c.apiKey != "" {
		endpoint = fmt.Sprintf("%s/%s/latest/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(base))
	}

	var body exchangeRateResponseV6
	if err := getJSON(ctx, c.httpClient, c.Name(), endpoint, &body); err != nil {
		return nil, err
	}
	if body.Result != "success" {
		return nil, &domain.UpstreamError{
			Provider: c.Name(),
			Message:  fmt.Sprintf("upstream reported %q", body.ErrorType),
		}
	}

	info := normalize.Exchange(base, body.ConversionRates)
	c.logger.Debug("fetched exchange rates", "base", base, "usd", info.USD, "kzt", info.KZT)
	return &info, nil
}

// Name returns the provider's name.
func (c *ExchangeRateClient) Name() string { return "exchangerate-api" }

var _ provider.Exchange = (*ExchangeRateClient)(nil)
