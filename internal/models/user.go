package models

// User is a registered account. Role is stored but not enforced anywhere;
// every new account gets the column default "client".
type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	PasswordHash  string `json:"-"`
	Role          string `json:"role"`
}
