package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"             // .env file loader for local development
	"github.com/labstack/echo/v4"          // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware

	"github.com/kasraef/blog-backend/internal/ai"         // generative-text client
	"github.com/kasraef/blog-backend/internal/config"     // internal config loader
	"github.com/kasraef/blog-backend/internal/database"   // MySQL pool
	"github.com/kasraef/blog-backend/internal/handler"    // HTTP handlers
	"github.com/kasraef/blog-backend/internal/middleware" // response cache middleware
	"github.com/kasraef/blog-backend/internal/queue"      // activity consumer
	"github.com/kasraef/blog-backend/internal/repository" // DB repositories
	"github.com/kasraef/blog-backend/internal/router"     // route registration
	"github.com/kasraef/blog-backend/internal/service"    // auth service
)

func main() {
	// Load .env first so config.Load sees the variables; absence is fine in
	// deployed environments where everything comes from the real env.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client disables the response cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, response cache disabled")
	}

	// Background consumer for domain events. Runs its own reconnect loop.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	posts := repository.NewPostRepo(db)
	auth := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTLHours, cfg.BcryptCost)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(auth))
	router.RegisterPosts(e, handler.NewPostHandler(posts), cfg.JWTSecret, cacheMW)
	router.RegisterRewrite(e, handler.NewRewriteHandler(ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
