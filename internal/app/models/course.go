package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	TeacherID   int64     `json:"teacherId" db:"teacher_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Teacher     *User     `json:"teacher,omitempty"`  // Relation, no db tag
	Students    []*User   `json:"students,omitempty"` // Relation, no db tag
}

// StudentCourse pairs a course with the calling student's own marks.
// Marks is nil when the student has not been graded yet.
type StudentCourse struct {
	Course
	Marks *float64 `json:"grade"`
}
