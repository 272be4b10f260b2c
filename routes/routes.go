package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"furniture-shop/controllers"
	"furniture-shop/middleware"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Catalog   *controllers.CatalogController
	Cart      *controllers.CartController
	Favorites *controllers.FavoritesController
	Checkout  *controllers.CheckoutController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/signup", ctrl.Auth.Signup)
	router.POST("/auth/login", ctrl.Auth.Login)
	router.GET("/categories", ctrl.Catalog.GetAllCategories)
	router.GET("/products", ctrl.Catalog.GetAllProducts)
	router.GET("/products/:id", ctrl.Catalog.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/logout", ctrl.Auth.Logout)
		auth.GET("/auth/profile", ctrl.Auth.GetProfile)
		auth.PATCH("/auth/profile", ctrl.Auth.UpdateProfile)

		auth.GET("/cart", ctrl.Cart.GetCart)
		auth.POST("/cart/items", ctrl.Cart.AddItem)
		auth.PATCH("/cart/items/:id", ctrl.Cart.UpdateItem)
		auth.DELETE("/cart/items/:id", ctrl.Cart.RemoveItem)
		auth.DELETE("/cart", ctrl.Cart.ClearCart)

		auth.GET("/favorites", ctrl.Favorites.GetFavorites)
		auth.POST("/favorites/toggle", ctrl.Favorites.ToggleFavorite)
		auth.DELETE("/favorites/:id", ctrl.Favorites.RemoveFavorite)

		auth.GET("/checkout", ctrl.Checkout.GetCheckout)
		auth.POST("/checkout/next", ctrl.Checkout.NextStep)
		auth.POST("/checkout/previous", ctrl.Checkout.PreviousStep)
		auth.POST("/checkout/addresses", ctrl.Checkout.AddAddress)
		auth.POST("/checkout/addresses/select", ctrl.Checkout.SelectAddress)
		auth.DELETE("/checkout/addresses/:id", ctrl.Checkout.RemoveAddress)
		auth.POST("/checkout/payment-methods", ctrl.Checkout.AddPaymentMethod)
		auth.POST("/checkout/payment-methods/select", ctrl.Checkout.SelectPaymentMethod)
		auth.DELETE("/checkout/payment-methods/:id", ctrl.Checkout.RemovePaymentMethod)
		auth.POST("/checkout/order", ctrl.Checkout.PlaceOrder)
		auth.POST("/checkout/reset", ctrl.Checkout.ResetCheckout)
	}
}
