package models

import "time"

// Request is a contact/inquiry message. UserID references the submitting
// account and is set to NULL by the database if that account is deleted.
type Request struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
