package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"mealweek/config"
	"mealweek/database"
	"mealweek/logger"
	"mealweek/pkg/clock"
	"mealweek/pkg/middleware"
	"mealweek/router"

	// Health
	healthCtrlImp "mealweek/pkg/health/controllerImp"

	// Recipe
	recipeCtrlImp "mealweek/pkg/recipe/controllerImp"
	recipeRepoImp "mealweek/pkg/recipe/repositoryImp"
	recipeSvcImp "mealweek/pkg/recipe/serviceImp"

	// Week
	weekCtrlImp "mealweek/pkg/week/controllerImp"
	weekRepoImp "mealweek/pkg/week/repositoryImp"
	weekSvcImp "mealweek/pkg/week/serviceImp"
)

func main() {
	// 1) Config + logger
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	log.Info().
		Str("port", cfg.Port).
		Str("tz", cfg.Timezone).
		Str("db_path", cfg.DBPath).
		Msg("config loaded")

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	// 3) Repos/Services/Controllers
	recipeSvc := recipeSvcImp.NewRecipeService(recipeRepoImp.New(db))
	weekSvc := weekSvcImp.NewWeekService(weekRepoImp.New(db), recipeSvc, clock.NewRealClock(cfg.Location))

	rCtrl := recipeCtrlImp.New(recipeSvc)
	wCtrl := weekCtrlImp.New(weekSvc, recipeSvc, cfg.Location)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))

	r := router.New(e, wCtrl, rCtrl, hCtrl)

	// 5) Start
	go func() {
		log.Info().Msgf("listening on :%s", cfg.Port)
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info().Msg("bye")
}
