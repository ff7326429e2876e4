package routes

import (
	"net/http"

	"jurisight/internal/config"
	"jurisight/internal/handlers"
	"jurisight/internal/middleware"
	"jurisight/internal/workflow"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	users middleware.UserActivator,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
	commentHandler *handlers.CommentHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
	newsletterHandler *handlers.NewsletterHandler,
	statsHandler *handlers.StatsHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/articles", articleHandler.ListPublicArticles).Methods("GET")
	api.HandleFunc("/articles/{slug:[a-z0-9-]+}", articleHandler.GetPublicArticle).Methods("GET")

	api.HandleFunc("/sections", taxonomyHandler.ListSections).Methods("GET")
	api.HandleFunc("/tags", taxonomyHandler.ListTags).Methods("GET")

	api.HandleFunc("/newsletter/subscribe", newsletterHandler.Subscribe).Methods("POST")
	api.HandleFunc("/newsletter/unsubscribe", newsletterHandler.Unsubscribe).Methods("POST")

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(func(next http.Handler) http.Handler {
		return middleware.JWTAuth(cfg, users, next)
	})
	protected.Use(middleware.AdminFastLane)

	protected.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")

	dashboard := protected.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/articles", articleHandler.CreateArticle).Methods("POST")
	dashboard.HandleFunc("/articles", articleHandler.ListDashboardArticles).Methods("GET")
	dashboard.HandleFunc("/articles/{id:[0-9]+}", articleHandler.GetDashboardArticle).Methods("GET")
	dashboard.HandleFunc("/articles/{id:[0-9]+}", articleHandler.UpdateArticle).Methods("PUT")
	dashboard.HandleFunc("/articles/{id:[0-9]+}", articleHandler.DeleteArticle).Methods("DELETE")

	dashboard.HandleFunc("/articles/{id:[0-9]+}/comments", commentHandler.ListComments).Methods("GET")

	// Leaving feedback is a reviewer action, reading it is not.
	review := dashboard.PathPrefix("").Subrouter()
	review.Use(middleware.AnyRole(workflow.RoleEditor, workflow.RoleAdmin))
	review.HandleFunc("/articles/{id:[0-9]+}/comments", commentHandler.CreateComment).Methods("POST")

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole(workflow.RoleAdmin))
	admin.HandleFunc("/sections", taxonomyHandler.CreateSection).Methods("POST")
	admin.HandleFunc("/sections/{id:[0-9]+}", taxonomyHandler.UpdateSection).Methods("PUT")
	admin.HandleFunc("/sections/{id:[0-9]+}", taxonomyHandler.DeleteSection).Methods("DELETE")
	admin.HandleFunc("/users", authHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}", authHandler.UpdateUser).Methods("PATCH")
	admin.HandleFunc("/stats", statsHandler.Dashboard).Methods("GET")
}
