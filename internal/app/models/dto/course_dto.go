package dto

import (
	"github.com/deniz/courseboard/internal/app/models"
)

// CourseRequest is the request body for course create/update
type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TeacherID   int64  `json:"teacherId" binding:"required"`
}

// CourseResponse is the response body for course create/update
type CourseResponse struct {
	Message string         `json:"message"`
	Course  *models.Course `json:"course"`
}

// EnrollRequest is the request body for POST /student/course
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
}
