package main

import (
	"net/http"

	_ "jurisight/docs"
	"jurisight/internal/app"
	"jurisight/internal/config"
	"jurisight/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Jurisight API
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @version 1.0
// @description Legal publishing platform API: editorial workflow, publishing, taxonomy and newsletter.
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Log.Warn(w)
	}
	if err != nil {
		logger.Log.Fatal("invalid config", zap.Error(err))
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("failed to init application", zap.Error(err))
	}

	logger.Log.Info("server starting", zap.String("port", cfg.Port), zap.String("db", cfg.GetDSNSafe()))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("server failed", zap.Error(err))
	}
}
