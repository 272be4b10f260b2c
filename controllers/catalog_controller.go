package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"furniture-shop/repositories"
	"furniture-shop/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetAllCategories godoc
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    ctrl.catalog.GetCategories(),
	})
}

// GetAllProducts godoc
// @Summary List products
// @Description List all products, optionally filtered by category
// @Tags Catalog
// @Produce json
// @Param category_id query string false "Category ID"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetAllProducts(c *gin.Context) {
	var err error
	var products interface{}

	if categoryID := c.Query("category_id"); categoryID != "" {
		products, err = ctrl.catalog.GetProductsByCategory(c.Request.Context(), categoryID)
	} else {
		products, err = ctrl.catalog.GetProducts(c.Request.Context())
	}

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProductByID godoc
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
