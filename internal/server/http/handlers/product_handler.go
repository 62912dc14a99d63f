package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/server/http/dto"
	"github.com/shopworks/storefront/internal/usecase"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

func productList(c *gin.Context, products []dto.ProductPayload) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(products),
		"data":    gin.H{"products": products},
	})
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, failed(err.Error()))
		return
	}
	productList(c, dto.NewProductPayloads(products))
}

// Featured handles GET /api/products/featured.
func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.facade.FeaturedProducts(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, failed("No featured products found"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}
	productList(c, dto.NewProductPayloads(products))
}

// ByCategory handles GET /api/products/category/:category.
func (h *ProductHandler) ByCategory(c *gin.Context) {
	products, err := h.facade.ProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, failed("Category is required"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}
	productList(c, dto.NewProductPayloads(products))
}

// Recommended handles GET /api/products/recommended.
func (h *ProductHandler) Recommended(c *gin.Context) {
	products, err := h.facade.RecommendedProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, failed(err.Error()))
		return
	}
	productList(c, dto.NewProductPayloads(products))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failed("Invalid request body"))
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, failed(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"product": dto.NewProductPayload(product)},
	})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, failed("Invalid product id"))
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, failed("Product not found"))
		default:
			c.JSON(http.StatusInternalServerError, failed(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Product deleted successfully",
	})
}
