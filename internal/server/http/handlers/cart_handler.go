package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/server/http/dto"
)

// CartHandler serves the per-user cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

func cartResponse(c *gin.Context, message string, lines []dto.CartLinePayload) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
		"cart":    lines,
	})
}

// Items handles GET /api/cart.
func (h *CartHandler) Items(c *gin.Context) {
	user := CurrentUser(c)
	lines, err := h.facade.CartItems(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failed(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"cart":   dto.NewCartPayload(lines),
	})
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failed("Invalid request body"))
		return
	}

	user := CurrentUser(c)
	lines, err := h.facade.AddToCart(c.Request.Context(), user.ID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, failed("Product id is required"))
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, failed("Product not found"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}
	cartResponse(c, "Product added to cart", dto.NewCartPayload(lines))
}

// Remove handles DELETE /api/cart. Without a product id the whole cart
// is cleared.
func (h *CartHandler) Remove(c *gin.Context) {
	var req dto.RemoveFromCartRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, failed("Invalid request body"))
			return
		}
	}

	user := CurrentUser(c)
	lines, err := h.facade.RemoveFromCart(c.Request.Context(), user.ID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, failed("Product not found in cart"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}
	cartResponse(c, "Product removed from cart", dto.NewCartPayload(lines))
}

// UpdateQuantity handles PUT /api/cart/:id.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, failed("Invalid product id"))
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failed("Invalid request body"))
		return
	}

	user := CurrentUser(c)
	lines, err := h.facade.UpdateCartItem(c.Request.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, failed("Product not found in cart"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}
	cartResponse(c, "Cart updated", dto.NewCartPayload(lines))
}
