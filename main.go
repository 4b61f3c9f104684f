package main

import (
	"context"
	"fmt"

	"finconf/config"
	"finconf/di"
	"finconf/driver/presentation_db"
	"finconf/rest"
	"finconf/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx := context.Background()
	pool, err := presentation_db.InitDBConnection(ctx, cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	err = e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Error("Error starting server", "error", err)
		panic(err)
	}
}
