package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"furniture-shop/config"
	"furniture-shop/controllers"
	"furniture-shop/middleware"
	"furniture-shop/repositories"
	"furniture-shop/routes"
	"furniture-shop/services"
	"furniture-shop/stores"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		db := config.ConnectDB()
		config.InitRedis()

		productRepo := repositories.NewProductRepository(db)
		userRepo := repositories.NewUserRepository(db)

		catalogService := services.NewCatalogService(productRepo, config.RedisClient)
		authService := services.NewAuthService(userRepo)
		sessions := stores.NewManager(userRepo)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, routes.Controllers{
			Auth:      controllers.NewAuthController(authService, sessions),
			Catalog:   controllers.NewCatalogController(catalogService),
			Cart:      controllers.NewCartController(sessions, catalogService),
			Favorites: controllers.NewFavoritesController(sessions, catalogService),
			Checkout:  controllers.NewCheckoutController(sessions),
		})
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
