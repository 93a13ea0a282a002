package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldinfo/pkg/config"
	"worldinfo/pkg/domain"
)

const countrylayerFranceBody = `[{
	"name": "France",
	"capital": "Paris",
	"languages": [{"iso639_1": "fr", "name": "French"}],
	"currencies": [{"code": "EUR", "name": "Euro", "symbol": "€"}]
}]`

const restCountriesFranceBody = `[{
	"name": {"common": "France", "official": "French Republic"},
	"capital": ["Paris"],
	"languages": {"fra": "French"},
	"currencies": {"EUR": {"name": "Euro", "symbol": "€"}},
	"flags": {"png": "https://flagcdn.com/w320/fr.png", "svg": "https://flagcdn.com/fr.svg"},
	"cca2": "FR"
}]`

func TestCountrylayerClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/France", r.URL.Path)
		assert.Equal(t, "cl-key", r.URL.Query().Get("access_key"))
		_, _ = w.Write([]byte(countrylayerFranceBody))
	}))
	defer srv.Close()

	client := NewCountrylayerClient(&config.Countrylayer{
		ApiKey: "cl-key", ApiUrl: srv.URL, HTTPTimeout: time.Second,
	}, testLogger())

	info, err := client.Lookup(context.Background(), "France", "fr")
	require.NoError(t, err)
	assert.Equal(t, "France", info.Name)
	assert.Equal(t, "Paris", info.Capital)
	assert.Equal(t, "French", info.Languages)
	assert.Equal(t, "EUR", info.CurrencyCode)
	assert.Equal(t, "https://flagcdn.com/w320/fr.png", info.FlagURL)
}

func TestRESTCountriesClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/France", r.URL.Path)
		_, _ = w.Write([]byte(restCountriesFranceBody))
	}))
	defer srv.Close()

	client := NewRESTCountriesClient(&config.RESTCountries{ApiUrl: srv.URL, HTTPTimeout: time.Second}, testLogger())

	info, err := client.Lookup(context.Background(), "France", "fr")
	require.NoError(t, err)
	assert.Equal(t, "France", info.Name)
	assert.Equal(t, "Paris", info.Capital)
	assert.Equal(t, "French", info.Languages)
	assert.Equal(t, "EUR", info.CurrencyCode)
	assert.Equal(t, "https://flagcdn.com/w320/fr.png", info.FlagURL)
}

func TestCountryClients_NotFoundDegradesToSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status": 404, "message": "Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	rest := NewRESTCountriesClient(&config.RESTCountries{ApiUrl: srv.URL, HTTPTimeout: time.Second}, testLogger())
	info, err := rest.Lookup(context.Background(), "Atlantis", "")
	require.NoError(t, err)
	assert.Equal(t, "Atlantis", info.Name)
	assert.Equal(t, domain.NA, info.Capital)
	assert.Equal(t, domain.NA, info.Languages)
	assert.Equal(t, domain.NA, info.CurrencyCode)

	cl := NewCountrylayerClient(&config.Countrylayer{ApiKey: "k", ApiUrl: srv.URL, HTTPTimeout: time.Second}, testLogger())
	info, err = cl.Lookup(context.Background(), "Atlantis", "xx")
	require.NoError(t, err)
	assert.Equal(t, domain.NA, info.CurrencyCode)
	assert.Equal(t, "https://flagcdn.com/w320/xx.png", info.FlagURL)
}

func TestCountryClients_ServerErrorIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rest := NewRESTCountriesClient(&config.RESTCountries{ApiUrl: srv.URL, HTTPTimeout: time.Second}, testLogger())
	_, err := rest.Lookup(context.Background(), "France", "")

	var ue *domain.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "restcountries", ue.Provider)
	assert.Equal(t, http.StatusInternalServerError, ue.Status)
}
