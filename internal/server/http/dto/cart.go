package dto

import "github.com/shopworks/storefront/internal/domain/model"

// AddToCartRequest names the product to add.
type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
}

// RemoveFromCartRequest names the product line to drop. A zero product
// id clears the whole cart.
type RemoveFromCartRequest struct {
	ProductID int64 `json:"productId"`
}

// UpdateCartItemRequest carries the new quantity for a line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLinePayload is one cart line with its product joined in.
type CartLinePayload struct {
	Product  ProductPayload `json:"product"`
	Quantity int            `json:"quantity"`
}

// NewCartPayload converts cart lines into their response shape.
func NewCartPayload(lines []model.CartLine) []CartLinePayload {
	payloads := make([]CartLinePayload, 0, len(lines))
	for i := range lines {
		payloads = append(payloads, CartLinePayload{
			Product:  NewProductPayload(&lines[i].Product),
			Quantity: lines[i].Quantity,
		})
	}
	return payloads
}
