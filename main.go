package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"furniture-shop/config"
	"furniture-shop/controllers"
	_ "furniture-shop/docs"
	"furniture-shop/middleware"
	"furniture-shop/repositories"
	"furniture-shop/routes"
	"furniture-shop/services"
	"furniture-shop/stores"
)

// @title Furniture Shop API
// @version 1.0
// @description Commerce backend for the AR furniture shopping app.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db := config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := productRepo.PopulateIfEmpty(ctx); err != nil {
		log.Printf("Warning: catalog bootstrap failed: %v", err)
	}
	cancel()

	catalogService := services.NewCatalogService(productRepo, config.RedisClient)
	authService := services.NewAuthService(userRepo)
	sessions := stores.NewManager(userRepo)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Controllers{
		Auth:      controllers.NewAuthController(authService, sessions),
		Catalog:   controllers.NewCatalogController(catalogService),
		Cart:      controllers.NewCartController(sessions, catalogService),
		Favorites: controllers.NewFavoritesController(sessions, catalogService),
		Checkout:  controllers.NewCheckoutController(sessions),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
