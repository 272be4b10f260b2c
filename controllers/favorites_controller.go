package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/services"
	"furniture-shop/stores"
)

type FavoritesController struct {
	sessions *stores.Manager
	catalog  *services.CatalogService
}

func NewFavoritesController(sessions *stores.Manager, catalog *services.CatalogService) *FavoritesController {
	return &FavoritesController{sessions: sessions, catalog: catalog}
}

func (ctrl *FavoritesController) favorites(c *gin.Context) *stores.FavoritesStore {
	return ctrl.sessions.Session(c.GetString("user_id")).Favorites
}

// GetFavorites godoc
// @Summary List saved products
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /favorites [get]
func (ctrl *FavoritesController) GetFavorites(c *gin.Context) {
	favorites := ctrl.favorites(c)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Favorites retrieved",
		"data": gin.H{
			"product_ids": favorites.SavedProductIDs(),
			"products":    favorites.SavedProducts(),
		},
	})
}

// ToggleFavorite godoc
// @Summary Toggle favorite
// @Description Save the product, or remove it when already saved
// @Tags Favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ToggleFavoriteRequest true "Toggle Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/toggle [post]
func (ctrl *FavoritesController) ToggleFavorite(c *gin.Context) {
	var req models.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}

	favorited := ctrl.favorites(c).Toggle(*product)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Favorite toggled",
		"data":    gin.H{"product_id": product.ID, "favorited": favorited},
	})
}

// RemoveFavorite godoc
// @Summary Remove from favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /favorites/{id} [delete]
func (ctrl *FavoritesController) RemoveFavorite(c *gin.Context) {
	ctrl.favorites(c).Remove(c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Removed from favorites"})
}
