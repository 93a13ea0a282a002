// Package app wires the configured dependencies into the running services.
package app

import (
	"log/slog"

	"worldinfo/pkg/config"
	"worldinfo/pkg/provider"
	"worldinfo/pkg/service/aggregate"
	"worldinfo/pkg/service/world"
)

// Deps are the initialized collaborators: the logger and one client per
// upstream source. The country client is selected at startup (provider A
// when a countrylayer key is configured, provider B otherwise).
type Deps struct {
	Logger   *slog.Logger
	Person   provider.Person
	Country  provider.Country
	Exchange provider.Exchange
	News     provider.News
}

// App holds the constructed services and the immutable configuration.
type App struct {
	Config    *config.App
	Logger    *slog.Logger
	World     *world.Service
	Aggregate *aggregate.Service
}

// New builds the application services from initialized dependencies.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Config:    cfg,
		Logger:    deps.Logger,
		World:     world.New(deps.Person, deps.Country, deps.Exchange, deps.News, deps.Logger),
		Aggregate: aggregate.New(deps.Person, deps.Country, deps.Exchange, deps.News, deps.Logger),
	}
}
