package repository

import (
	"context"

	"github.com/shopworks/storefront/internal/domain/model"
)

// UserRepository describes persistence operations for users.
// Implementations must enforce email uniqueness.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
