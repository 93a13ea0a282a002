// Package initializer constructs the application dependencies from config.
package initializer

import (
	infra_provider "worldinfo/infra/provider"
	"worldinfo/pkg/app"
	"worldinfo/pkg/config"
)

// InitializeDependencies builds the logger and the four upstream clients.
// Country provider selection is a startup-time switch: countrylayer when its
// key is configured, restcountries otherwise; the canonical shape downstream
// is identical either way.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	deps := &app.Deps{
		Logger:   logger,
		Person:   infra_provider.NewRandomUserClient(cfg.Providers.RandomUser, logger),
		Exchange: infra_provider.NewExchangeRateClient(cfg.Providers.ExchangeRate, logger),
		News:     infra_provider.NewNewsAPIClient(cfg.Providers.News, logger),
	}

	if cfg.Providers.Countrylayer.ApiKey != "" {
		deps.Country = infra_provider.NewCountrylayerClient(cfg.Providers.Countrylayer, logger)
		logger.Info("country provider selected", "provider", "countrylayer")
	} else {
		deps.Country = infra_provider.NewRESTCountriesClient(cfg.Providers.RESTCountries, logger)
		logger.Info("country provider selected", "provider", "restcountries")
	}

	return deps, nil
}
