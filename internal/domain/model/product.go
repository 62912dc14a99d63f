package model

import "time"

// Product is a catalog entry.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	ImageKey    string
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
