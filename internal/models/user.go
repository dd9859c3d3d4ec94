package models

import (
	"time"
)

// Verification states for a registered student.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Roles, ordered by privilege. RoleRank maps each onto that order so
// "admin or higher" checks stay in one place.
const (
	RoleStudent    = "student"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

var roleRank = map[string]int{
	RoleStudent:    1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// RoleAtLeast reports whether role carries at least the privileges of min.
// Unknown roles never satisfy any requirement.
func RoleAtLeast(role, min string) bool {
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	m, ok := roleRank[min]
	if !ok {
		return false
	}
	return r >= m
}

// AcademicLevels is the fixed enumeration of academic years.
var AcademicLevels = []string{"100L", "200L", "300L", "400L", "500L"}

type User struct {
	ID           string
	Email        string // stored lowercase
	PasswordHash string // populated only by the credential lookup path
	FullName     string
	RegNumber    string // matric or JAMB number, stored uppercase
	Level        string // "100L".."500L"

	// Identity-document artifact uploaded at registration. The key is the
	// media-store object key, kept so the asset can be deleted later.
	IDCardURL string
	IDCardKey string

	VerificationStatus string
	RejectionReason    string

	Role      string
	CreatedAt time.Time
}
