package models

import "time"

// User is a back-office login.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         RoleType  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
