package aggregate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldinfo/pkg/domain"
	aggsvc "worldinfo/pkg/service/aggregate"
)

type stubProviders struct {
	person   func(ctx context.Context) (*domain.PersonInfo, error)
	country  func(ctx context.Context, name, code string) (*domain.CountryInfo, error)
	exchange func(ctx context.Context, base string) (*domain.ExchangeInfo, error)
	news     func(ctx context.Context, query string) ([]domain.NewsItem, error)
}

func (s *stubProviders) Fetch(ctx context.Context) (*domain.PersonInfo, error) {
	return s.person(ctx)
}
func (s *stubProviders) Lookup(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
	return s.country(ctx, name, code)
}
func (s *stubProviders) Rates(ctx context.Context, base string) (*domain.ExchangeInfo, error) {
	return s.exchange(ctx, base)
}
func (s *stubProviders) TopStories(ctx context.Context, query string) ([]domain.NewsItem, error) {
	return s.news(ctx, query)
}
func (s *stubProviders) Name() string { return "stub" }

func newTestApp(stubs *stubProviders) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := aggsvc.New(stubs, stubs, stubs, stubs, logger)
	app := fiber.New()
	Routes(app, svc)
	return app
}

func TestGetComposite_PartialFailureStillSucceeds(t *testing.T) {
	app := newTestApp(&stubProviders{
		person: func(ctx context.Context) (*domain.PersonInfo, error) {
			return &domain.PersonInfo{FirstName: "Jean", CountryName: "France", CountryCode: "fr"}, nil
		},
		country: func(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
			return nil, &domain.UpstreamError{Provider: "restcountries", Status: 500, Message: "boom"}
		},
		news: func(ctx context.Context, query string) ([]domain.NewsItem, error) {
			return []domain.NewsItem{{Title: "headline", URL: "https://n.example/1"}}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/random-user", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "partial failure keeps a success status")

	var res domain.AggregateResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))

	require.NotNil(t, res.User.Data)
	assert.Equal(t, "Jean", res.User.Data.FirstName)
	require.NotNil(t, res.Country.Error)
	assert.Equal(t, "restcountries", res.Country.Error.Source)
	require.NotNil(t, res.Exchange.Error)
	assert.Equal(t, "country", res.Exchange.Error.Source)
	require.NotNil(t, res.News.Data)
	assert.Len(t, *res.News.Data, 1)
}

func TestGetComposite_PersonFailureIsServerError(t *testing.T) {
	app := newTestApp(&stubProviders{
		person: func(ctx context.Context) (*domain.PersonInfo, error) {
			return nil, &domain.UpstreamError{Provider: "randomuser", Status: 503, Message: "down"}
		},
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/random-user", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
}

func TestGetComposite_FullSuccess(t *testing.T) {
	app := newTestApp(&stubProviders{
		person: func(ctx context.Context) (*domain.PersonInfo, error) {
			return &domain.PersonInfo{FirstName: "Jean", CountryName: "France", CountryCode: "fr"}, nil
		},
		country: func(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
			return &domain.CountryInfo{Name: "France", CurrencyCode: "EUR"}, nil
		},
		exchange: func(ctx context.Context, base string) (*domain.ExchangeInfo, error) {
			assert.Equal(t, "EUR", base)
			return &domain.ExchangeInfo{Base: "EUR", USD: "1.08", KZT: "520.13"}, nil
		},
		news: func(ctx context.Context, query string) ([]domain.NewsItem, error) {
			assert.Equal(t, "France", query)
			return []domain.NewsItem{}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/random-user", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res domain.AggregateResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.NotNil(t, res.Exchange.Data)
	assert.Equal(t, "520.13", res.Exchange.Data.KZT)
}
