package dto

import (
	"time"

	"github.com/shopworks/storefront/internal/domain/model"
)

// CreateProductRequest describes the catalog entry payload. Image is an
// optional base64 data URL.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsFeatured  bool    `json:"isFeatured"`
}

// ProductPayload is the catalog entry response shape.
type ProductPayload struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProductPayload converts a domain product into its response shape.
func NewProductPayload(product *model.Product) ProductPayload {
	return ProductPayload{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.ImageURL,
		IsFeatured:  product.IsFeatured,
		CreatedAt:   product.CreatedAt,
	}
}

// NewProductPayloads converts a product slice.
func NewProductPayloads(products []model.Product) []ProductPayload {
	payloads := make([]ProductPayload, 0, len(products))
	for i := range products {
		payloads = append(payloads, NewProductPayload(&products[i]))
	}
	return payloads
}
