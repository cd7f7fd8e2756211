package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/cache"
	"github.com/listas-tarefas/task-manager/internal/config"
	"github.com/listas-tarefas/task-manager/internal/constants"
	"github.com/listas-tarefas/task-manager/internal/handlers"
	"github.com/listas-tarefas/task-manager/internal/middleware"
	"github.com/listas-tarefas/task-manager/internal/repository"
	"github.com/listas-tarefas/task-manager/internal/services"
	"gorm.io/gorm"
)

// setupRouter wires repositories, services and handlers onto a gin engine.
// idempotency may be nil, which disables Idempotency-Key handling.
func setupRouter(cfg *config.Config, db *gorm.DB, store sessions.Store, idempotency *cache.IdempotencyStore) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	listaRepo := repository.NewListaRepository(db)
	tarefaRepo := repository.NewTarefaRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	listaService := services.NewListaService(listaRepo)
	tarefaService := services.NewTarefaService(tarefaRepo, listaRepo)
	dashboardService := services.NewDashboardService(listaRepo, tarefaRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	listaHandler := handlers.NewListaHandler(listaService)
	tarefaHandler := handlers.NewTarefaHandler(tarefaService, listaService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/health", healthHandler.Health)

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	}

	r.GET(constants.RouteDashboard, middleware.RequireAuth(), dashboardHandler.GetDashboard)

	// Lista routes (protected)
	listas := r.Group(constants.RouteListas)
	listas.Use(middleware.RequireAuth())
	{
		listas.GET("", listaHandler.ListListas)
		listas.POST("", middleware.Idempotency(idempotency), listaHandler.CreateLista)
		listas.GET("/:id", middleware.RequireResourceID(), listaHandler.GetLista)
		listas.PUT("/:id", middleware.RequireResourceID(), listaHandler.UpdateLista)
		listas.PATCH("/:id", middleware.RequireResourceID(), listaHandler.UpdateLista)
		listas.DELETE("/:id", middleware.RequireResourceID(), listaHandler.DeleteLista)
	}

	// Tarefa routes (protected)
	tarefas := r.Group(constants.RouteTarefas)
	tarefas.Use(middleware.RequireAuth())
	{
		tarefas.GET("", tarefaHandler.ListTarefas)
		tarefas.POST("", middleware.Idempotency(idempotency), tarefaHandler.CreateTarefa)
		tarefas.GET("/:id", middleware.RequireResourceID(), tarefaHandler.GetTarefa)
		tarefas.PUT("/:id", middleware.RequireResourceID(), tarefaHandler.UpdateTarefa)
		tarefas.PATCH("/:id", middleware.RequireResourceID(), tarefaHandler.UpdateTarefa)
		tarefas.DELETE("/:id", middleware.RequireResourceID(), tarefaHandler.DeleteTarefa)
	}

	return r
}
