// controller/cart_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/service"
	"github.com/andreyques41/lyfter-store/util"
)

type CartController struct {
	cartService service.ICartService
}

func NewCartController(cartService service.ICartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// RegisterRoutes registers the API routes
func (cc *CartController) RegisterRoutes(r *gin.RouterGroup) {
	carts := r.Group("/carts")
	{
		carts.POST("", cc.CreateCart)
		carts.PUT("/:id", cc.UpdateCart)
		carts.DELETE("/:id", cc.DeleteCart)
		carts.GET("/:id", cc.GetCart)
		carts.GET("", cc.GetAllCarts)
		carts.GET("/user/:userId", cc.GetCartByUser)
	}
}

// CreateCart endpoint
func (cc *CartController) CreateCart(c *gin.Context) {
	var cart model.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid cart data", lyfter_errors.ErrInvalidCartData)
		return
	}
	actorID := util.GetActorFromContext(c)

	createdCart, err := cc.cartService.CreateCart(c, cart, actorID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrDatabaseOperation) {
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		} else {
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create cart", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdCart)
}

// UpdateCart endpoint
func (cc *CartController) UpdateCart(c *gin.Context) {
	cartID := c.Param("id")
	var cart model.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid cart data", err)
		return
	}
	cart.ID = cartID
	actorID := util.GetActorFromContext(c)

	updatedCart, err := cc.cartService.UpdateCart(c, cart, actorID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrCartNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Cart not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedCart)
}

// DeleteCart endpoint
func (cc *CartController) DeleteCart(c *gin.Context) {
	cartID := c.Param("id")
	actorID := util.GetActorFromContext(c)

	if err := cc.cartService.DeleteCart(c, cartID, actorID); err != nil {
		if errors.Is(err, lyfter_errors.ErrCartNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Cart not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete cart", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCart endpoint
func (cc *CartController) GetCart(c *gin.Context) {
	cartID := c.Param("id")

	cart, err := cc.cartService.GetCart(c, cartID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrCartNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Cart not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get cart", err)
		}
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetCartByUser endpoint
func (cc *CartController) GetCartByUser(c *gin.Context) {
	userID := c.Param("userId")

	cart, err := cc.cartService.GetCartByUser(c, userID)
	if err != nil {
		if errors.Is(err, lyfter_errors.ErrCartNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Cart not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get cart", err)
		}
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetAllCarts endpoint
func (cc *CartController) GetAllCarts(c *gin.Context) {
	carts, err := cc.cartService.GetAllCarts(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list carts", err)
		return
	}

	c.JSON(http.StatusOK, carts)
}
