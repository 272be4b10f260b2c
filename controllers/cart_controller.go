package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/services"
	"furniture-shop/stores"
)

type CartController struct {
	sessions *stores.Manager
	catalog  *services.CatalogService
}

func NewCartController(sessions *stores.Manager, catalog *services.CatalogService) *CartController {
	return &CartController{sessions: sessions, catalog: catalog}
}

func (ctrl *CartController) cart(c *gin.Context) *stores.CartStore {
	return ctrl.sessions.Session(c.GetString("user_id")).Cart
}

func cartPayload(cart *stores.CartStore) gin.H {
	return gin.H{
		"items":       cart.Items(),
		"total_price": cart.TotalPrice(),
		"size":        cart.Size(),
	}
}

// GetCart godoc
// @Summary Get cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    cartPayload(ctrl.cart(c)),
	})
}

// AddItem godoc
// @Summary Add product to cart
// @Description Add one unit of a product; repeat adds increment the quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
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

	cart := ctrl.cart(c)
	cart.AddToCart(*product)

	c.JSON(200, gin.H{"success": true, "message": "Added to cart", "data": cartPayload(cart)})
}

// UpdateItem godoc
// @Summary Update item quantity
// @Description Set an exact quantity; zero or less removes the item
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "Quantity Request"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart := ctrl.cart(c)
	cart.UpdateQuantity(c.Param("id"), req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(cart)})
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.cart(c)
	cart.RemoveFromCart(c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Removed from cart", "data": cartPayload(cart)})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.cart(c)
	cart.Clear()

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(cart)})
}
