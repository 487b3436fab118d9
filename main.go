package main

import (
	"log"

	"github.com/sushushu7/antonia-blog/config"
	"github.com/sushushu7/antonia-blog/controllers"
	"github.com/sushushu7/antonia-blog/database"
	"github.com/sushushu7/antonia-blog/middleware"
	"github.com/sushushu7/antonia-blog/routes"
	"github.com/sushushu7/antonia-blog/templates"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	gormDB := database.Connect(cfg)
	database.Migrate(gormDB)
	db := database.New(gormDB)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.Logger())
	r.Use(middleware.CurrentUser(db, cfg.SessionSecret))

	r.SetHTMLTemplate(templates.Load())

	authController := controllers.NewAuthController(db, cfg)
	postController := controllers.NewPostController(db, cfg)
	pageController := controllers.NewPageController()

	routes.SetupRoutes(r, cfg, authController, postController, pageController)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
