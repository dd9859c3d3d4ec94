package handlers

import (
	"time"

	"github.com/lawsa-dev/portal-api/internal/models"
)

// UserResponse is the public projection of a user record. The credential
// hash is never part of it.
type UserResponse struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	RegNumber          string    `json:"regNumber"`
	Level              string    `json:"level"`
	IDCardURL          string    `json:"idCardUrl,omitempty"`
	VerificationStatus string    `json:"verificationStatus"`
	RejectionReason    string    `json:"rejectionReason,omitempty"`
	Role               string    `json:"role"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewUserResponse projects a user record for API responses.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		RegNumber:          u.RegNumber,
		Level:              u.Level,
		IDCardURL:          u.IDCardURL,
		VerificationStatus: u.VerificationStatus,
		RejectionReason:    u.RejectionReason,
		Role:               u.Role,
		CreatedAt:          u.CreatedAt,
	}
}

// MaterialResponse is the API projection of a library resource.
type MaterialResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CourseCode string    `json:"courseCode"`
	Level      string    `json:"level"`
	Semester   string    `json:"semester"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewMaterialResponse projects a material record for API responses.
func NewMaterialResponse(m *models.Material) MaterialResponse {
	return MaterialResponse{
		ID:         m.ID,
		Title:      m.Title,
		CourseCode: m.CourseCode,
		Level:      m.Level,
		Semester:   m.Semester,
		FileURL:    m.FileURL,
		FileType:   m.FileType,
		UploadedBy: m.UploadedBy,
		CreatedAt:  m.CreatedAt,
	}
}
