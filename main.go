package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerniceZTT/crm_core/config"
	"github.com/BerniceZTT/crm_core/middleware"
	"github.com/BerniceZTT/crm_core/repository"
	"github.com/BerniceZTT/crm_core/routes"
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	utils.InitLogger()

	cfg := config.LoadConfig()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := repository.Open(cfg.DatabaseDSN)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer repository.Close(db)

	if err := repository.Migrate(db); err != nil {
		utils.Logger.Fatal().Err(err).Msg("schema migration failed")
	}
	if err := repository.SeedAdminUser(db); err != nil {
		utils.Logger.Error().Err(err).Msg("admin account seeding failed")
	}

	tokens := utils.NewTokenService(cfg.JWTKey, cfg.TokenTTL)

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	routes.Register(router, db, tokens)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Logger.Info().Msgf("server listening on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	utils.Logger.Info().Msg("server stopped")
}
