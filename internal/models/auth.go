package models

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Claims defines the JWT claims structure carried by the bearer token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
