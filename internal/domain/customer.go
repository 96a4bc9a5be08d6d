package domain

import "time"

// Customer is the contact snapshot submitted with a checkout.
type Customer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address"`
	Note     string `json:"note,omitempty"`
}

// User is one registered customer, unique by case-insensitive email.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
