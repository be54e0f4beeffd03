package model

import "github.com/golang-jwt/jwt/v5"

// AdminRole роль в токене оператора
const AdminRole = "admin"

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
