package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	_ "worldinfo/docs"
	"worldinfo/infra/initializer"
	"worldinfo/pkg/app"
	"worldinfo/pkg/config"
	"worldinfo/webapi"
)

// @title worldinfo API
// @version 1.0.0
// @description Aggregates random-person, country, exchange-rate and news providers into one composite API.
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
