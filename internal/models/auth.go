package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserRole represents the roles carried in access tokens.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleFaculty UserRole = "FACULTY"
	RoleStudent UserRole = "STUDENT"
)

// JWTClaims represents the JWT payload for access tokens. PersonID is the
// ERP person identifier the caller acts as.
type JWTClaims struct {
	PersonID string   `json:"person_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the actor holds the administrative role.
func (c *JWTClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
