package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/cache"
	"github.com/listas-tarefas/task-manager/internal/config"
	"github.com/listas-tarefas/task-manager/internal/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if cfg.AutoMigrate {
		if err := database.Migrate(database.GetDB()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	// Idempotency keys need Redis; without it the middleware is a no-op
	var idempotency *cache.IdempotencyStore
	if addr := cfg.RedisAddr(); addr != "" {
		client, err := cache.NewRedisClient(context.Background(), addr, cfg.RedisPassword)
		if err != nil {
			log.Printf("Idempotency keys disabled: %v", err)
		} else {
			defer client.Close()
			idempotency = cache.NewIdempotencyStore(client, cfg.IdempotencyTTL)
		}
	}

	r := setupRouter(cfg, database.GetDB(), store, idempotency)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newSessionStore builds the Redis-backed store, or a signed cookie store
// when SESSION_STORE=cookie.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		rs, err := redisStore.NewStore(
			10,              // Redis pool size
			"tcp",           // network type
			cfg.RedisAddr(), // Redis address from config
			cfg.RedisPassword,
			[]byte(cfg.SessionSecret), // authentication key
		)
		if err != nil {
			return nil, err
		}
		store = rs
	}

	// Configure session options based on environment
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(), // true in production (HTTPS), false in development
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
