package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of a session token. Role and verification
// status are fixed at issue time and refresh only when a new session is
// established; admin-only endpoints re-check the role against the store.
type SessionClaims struct {
	UserID             string `json:"user_id"`
	Email              string `json:"email,omitempty"`
	Role               string `json:"role"`
	VerificationStatus string `json:"verification_status"`
	jwt.RegisteredClaims
}

// Identity is the minimal projection returned by a successful credential
// check. The id-card image doubles as the avatar.
type Identity struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	VerificationStatus string `json:"verificationStatus"`
	Image              string `json:"image"`
}
