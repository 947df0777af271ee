package models

import "time"

// Booking reserves a service option for a user. SubcategoryName is a plain
// string, not a foreign key; it can dangle if the option is later renamed or
// replaced.
type Booking struct {
	ID              int64     `json:"id"`
	ServiceID       int64     `json:"service_id"`
	SubcategoryName string    `json:"subcategory_name"`
	UserID          int64     `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}
