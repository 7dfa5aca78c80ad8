package models

import "time"

// User represents a registered account. The password field holds the bcrypt
// hash and is never serialized.
type User struct {
	ID        string    `json:"id"        bson:"_id"`
	Username  string    `json:"username"  bson:"username"`
	Email     string    `json:"email"     bson:"email"`
	Password  string    `json:"-"         bson:"password"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
