package dto

// AssignGradeRequest is the request body for the grade upsert route.
// A pointer keeps zero marks distinguishable from a missing field.
type AssignGradeRequest struct {
	Grade *float64 `json:"grade" binding:"required"`
}

// GradeResponse is the response body for GET /student/course/:courseId/grade
type GradeResponse struct {
	Marks float64 `json:"marks"`
	Grade string  `json:"grade"`
}
