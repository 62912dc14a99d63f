package repository

import (
	"context"

	"github.com/shopworks/storefront/internal/domain/model"
)

// CartRepository describes persistence operations for cart line items.
type CartRepository interface {
	// Add inserts a line with quantity 1 or increments an existing one.
	Add(ctx context.Context, userID, productID int64) error
	// Remove deletes a single line and reports whether it existed.
	Remove(ctx context.Context, userID, productID int64) (bool, error)
	Clear(ctx context.Context, userID int64) error
	// SetQuantity updates a line and reports whether it existed. Quantity must
	// be positive; removal is a separate operation.
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) (bool, error)
	Lines(ctx context.Context, userID int64) ([]model.CartLine, error)
}
