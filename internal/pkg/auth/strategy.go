package auth

import "time"

// TokenPair bundles a short-lived access token with its long-lived refresh
// counterpart. Both carry the same user identifier and nothing else.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Strategy issues and verifies the two token classes used by the session flow.
// Access and refresh tokens are signed with distinct secrets so a leaked
// secret of one class cannot forge tokens of the other.
type Strategy interface {
	IssuePair(userID int64) (TokenPair, error)
	IssueAccess(userID int64) (string, error)
	ParseAccess(token string) (int64, error)
	ParseRefresh(token string) (int64, error)
}

type Options struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}
