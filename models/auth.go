package models

import "github.com/golang-jwt/jwt/v4"

// TokenClaims is the signed session payload.
type TokenClaims struct {
	UserID string    `json:"user_id"`
	Role   RoleValue `json:"role"`
	jwt.RegisteredClaims
}

// AuthUser is the identity resolved from the request token. The zero value
// is the anonymous caller (no id, no role).
type AuthUser struct {
	ID   string
	Role RoleValue
}

func (u AuthUser) IsAnonymous() bool {
	return u.ID == ""
}
