package app

import (
	"context"
	"time"

	"jurisight/internal/config"
	"jurisight/internal/db"
	"jurisight/internal/handlers"
	"jurisight/internal/logger"
	"jurisight/internal/repository"
	"jurisight/internal/routes"
	"jurisight/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	// Redis is an optimisation: if it is down the public listing just
	// hits Postgres on every request.
	rdb, err := db.NewRedisClient(cfg)
	if err != nil {
		logger.Log.Warn("redis unavailable, listing cache disabled", zap.Error(err))
		rdb = nil
	}

	// Repositories
	userRepo := repository.NewUserRepo(conn)
	articleRepo := repository.NewArticleRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)
	tagRepo := repository.NewTagRepo(conn)
	taxonomyRepo := repository.NewTaxonomyRepo(conn)
	newsletterRepo := repository.NewNewsletterRepo(conn)

	// Services
	cacheService := services.NewCacheService(rdb)
	emailService := services.NewEmailService(cfg)
	notifier := services.NewNotifier(newsletterRepo, cfg.SiteURL)
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, commentRepo, tagRepo, cacheService, notifier)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	taxonomyService := services.NewTaxonomyService(taxonomyRepo, tagRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	statsService := services.NewStatsService(articleRepo, userRepo, newsletterRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	statsHandler := handlers.NewStatsHandler(statsService)

	startRefreshTokenCleaner(userRepo)

	for i := 0; i < 3; i++ {
		go services.StartEmailWorker(emailService)
	}
	go services.StartViewWorker(articleRepo)

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, userRepo,
		authHandler, articleHandler, commentHandler,
		taxonomyHandler, newsletterHandler, statsHandler)

	return router, nil
}

func startRefreshTokenCleaner(repo repository.UserRepo) {
	t := time.NewTicker(1 * time.Hour)
	go func() {
		for range t.C {
			if err := repo.DeleteExpiredRefreshTokens(context.Background()); err != nil {
				logger.Log.Warn("refresh token cleanup failed", zap.Error(err))
			}
		}
	}()
}
