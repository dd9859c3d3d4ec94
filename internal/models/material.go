package models

import "time"

// Semesters for library materials.
const (
	SemesterFirst  = "First"
	SemesterSecond = "Second"
)

// Material is a library resource pointing at an externally hosted file.
// Duplicates are permitted by design; there is no dedup logic.
type Material struct {
	ID         string
	Title      string
	CourseCode string // stored uppercase, e.g. "PPL 301"
	Level      string
	Semester   string
	FileURL    string
	FileType   string // defaults to "pdf"
	UploadedBy string // admin user id
	CreatedAt  time.Time
}
