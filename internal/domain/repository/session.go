package repository

import "context"

// SessionRepository tracks the single active refresh token per user.
// Save overwrites any previous value, which is what invalidates older sessions.
type SessionRepository interface {
	Save(ctx context.Context, userID int64, token string) error
	Verify(ctx context.Context, userID int64, token string) (bool, error)
	Revoke(ctx context.Context, userID int64) error
}
