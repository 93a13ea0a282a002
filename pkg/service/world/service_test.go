package world

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldinfo/pkg/domain"
)

type fakeCountry struct {
	name, code string
}

func (f *fakeCountry) Lookup(ctx context.Context, name, code string) (*domain.CountryInfo, error) {
	f.name, f.code = name, code
	return &domain.CountryInfo{Name: name}, nil
}
func (f *fakeCountry) Name() string { return "fake" }

type fakeExchange struct{ base string }

func (f *fakeExchange) Rates(ctx context.Context, base string) (*domain.ExchangeInfo, error) {
	f.base = base
	return &domain.ExchangeInfo{Base: base, USD: domain.NA, KZT: domain.NA}, nil
}
func (f *fakeExchange) Name() string { return "fake" }

func newService(country *fakeCountry, exchange *fakeExchange) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, country, exchange, nil, logger)
}

func TestCountryValidation(t *testing.T) {
	country := &fakeCountry{}
	svc := newService(country, &fakeExchange{})

	var ve *domain.ValidationError
	_, err := svc.Country(context.Background(), "  ", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "country", ve.Field)

	_, err = svc.Country(context.Background(), "France", "fra")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "code", ve.Field)

	_, err = svc.Country(context.Background(), " France ", " fr ")
	require.NoError(t, err)
	assert.Equal(t, "France", country.name, "inputs are trimmed")
	assert.Equal(t, "fr", country.code)
}

func TestExchangeRatesValidation(t *testing.T) {
	exchange := &fakeExchange{}
	svc := newService(&fakeCountry{}, exchange)

	var ve *domain.ValidationError
	_, err := svc.ExchangeRates(context.Background(), "")
	require.ErrorAs(t, err, &ve)

	_, err = svc.ExchangeRates(context.Background(), "EURO")
	require.ErrorAs(t, err, &ve)

	_, err = svc.ExchangeRates(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", exchange.base)
}

func TestNewsValidation(t *testing.T) {
	svc := newService(&fakeCountry{}, &fakeExchange{})

	var ve *domain.ValidationError
	_, err := svc.News(context.Background(), "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "country", ve.Field)
}
