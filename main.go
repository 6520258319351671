package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/ritchadh/watchlist/config"
	"github.com/ritchadh/watchlist/controllers"
	"github.com/ritchadh/watchlist/data_access"
	"github.com/ritchadh/watchlist/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	watchlistService := services.NewWatchlistService(movieRepo, userRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(watchlistService)

	// Setup Gin router with the session cookie store and the templates
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(sessions.Sessions("watchlist_session", cookie.NewStore([]byte(cfg.SecretKey))))
	r.LoadHTMLGlob("templates/*.html")

	controllers.RegisterRoutes(r, authController, movieController)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
