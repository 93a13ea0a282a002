// Package world provides the single-resource services behind the
// /randomuser, /countries, /exchange-rate and /news endpoints.
package world

import (
	"context"
	"log/slog"
	"strings"

	"worldinfo/pkg/domain"
	"worldinfo/pkg/provider"
)

// Service validates caller inputs and delegates to the upstream clients.
type Service struct {
	person   provider.Person
	country  provider.Country
	exchange provider.Exchange
	news     provider.News
	logger   *slog.Logger
}

// New creates a new world service.
func New(
	person provider.Person,
	country provider.Country,
	exchange provider.Exchange,
	news provider.News,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		person:   person,
		country:  country,
		exchange: exchange,
		news:     news,
		logger:   logger.With("service", "World"),
	}
}

// RandomPerson fetches one random person; it takes no caller input.
func (s *Service) RandomPerson(ctx context.Context) (*domain.PersonInfo, error) {
	return s.person.Fetch(ctx)
}

// Country looks up a country by name; code is an optional alpha-2 hint for
// the flag fallback.
func (s *Service) Country(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("country", "country name is required")
	}
	code = strings.TrimSpace(code)
	if code != "" && len(code) != 2 {
		return nil, domain.NewValidationError("code", "must be a two-letter ISO country code")
	}
	return s.country.Lookup(ctx, name, code)
}

// ExchangeRates fetches USD/KZT rates for a base currency code.
func (s *Service) ExchangeRates(ctx context.Context, currency string) (*domain.ExchangeInfo, error) {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return nil, domain.NewValidationError("currency", "currency code is required")
	}
	if len(currency) != 3 {
		return nil, domain.NewValidationError("currency", "must be a three-letter ISO currency code")
	}
	return s.exchange.Rates(ctx, currency)
}

// News fetches up to five articles for a country or topic string.
func (s *Service) News(ctx context.Context, country string) ([]domain.NewsItem, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, domain.NewValidationError("country", "country name is required")
	}
	return s.news.TopStories(ctx, country)
}
