package models

import "time"

// Service is a listing owned by one user. UserEmail is denormalized from the
// owner at creation time and carries no foreign key: if the owner row ever
// changes or disappears, the copy here goes stale.
type Service struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	CreatedAt   time.Time `json:"created_at"`

	Subcategories []Subcategory `json:"subcategories"`
}
