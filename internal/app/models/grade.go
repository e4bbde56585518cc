package models

import (
	"time"
)

// Grade defines the grade model based on the 'grades' table.
// At most one row exists per (course, student) pair, enforced by a
// unique constraint.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Marks     float64   `json:"marks" db:"marks"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
