// controller/product_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andreyques41/lyfter-store/cache"
	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/service"
	"github.com/andreyques41/lyfter-store/util"
	helper_util "github.com/andreyques41/lyfter-store/util/helper"
)

type ProductController struct {
	productService service.IProductService
}

func NewProductController(productService service.IProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// RegisterRoutes registers the API routes
func (pc *ProductController) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.POST("", pc.CreateProduct)
		products.PUT("/:id", pc.UpdateProduct)
		products.DELETE("/:id", pc.DeleteProduct)
		products.GET("/:id", pc.GetProduct)
		products.GET("", pc.ListProducts)
		products.POST("/search", pc.SearchProducts)
	}
}

// CreateProduct endpoint
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", lyfter_errors.ErrInvalidProductData)
		return
	}
	actorID := util.GetActorFromContext(c)

	createdProduct, err := pc.productService.CreateProduct(c, product, actorID)
	if err != nil {
		switch {
		case errors.Is(err, lyfter_errors.ErrProductConflict):
			util.RespondWithError(c, http.StatusConflict, "Product already exists", err)
		case errors.Is(err, lyfter_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create product", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdProduct)
}

// UpdateProduct endpoint
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	var product model.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}
	product.ID = productID
	actorID := util.GetActorFromContext(c)

	updatedProduct, err := pc.productService.UpdateProduct(c, product, actorID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrProductNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedProduct)
}

// DeleteProduct endpoint
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	actorID := util.GetActorFromContext(c)

	if err := pc.productService.DeleteProduct(c, productID, actorID); err != nil {
		if errors.Is(err, lyfter_errors.ErrProductNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProduct endpoint
func (pc *ProductController) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := pc.productService.GetProduct(c, productID)
	if err != nil {
		switch {
		case errors.Is(err, lyfter_errors.ErrProductNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Product not found", err)
		case errors.Is(err, cache.ErrInvalidIdentifier):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid product id", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get product", err)
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts endpoint
func (pc *ProductController) ListProducts(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	products, err := pc.productService.ListProducts(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts endpoint
func (pc *ProductController) SearchProducts(c *gin.Context) {
	var criteria model.ProductSearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", err)
		return
	}

	products, err := pc.productService.SearchProducts(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}
