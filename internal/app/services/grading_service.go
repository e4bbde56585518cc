package services

import (
	"context"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/app/repositories"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
)

// GradingService defines the interface for grade assignment and retrieval
type GradingService interface {
	AssignGrade(ctx context.Context, courseID, studentID int64, marks float64) error
	GetMyGrade(ctx context.Context, courseID, studentID int64) (*models.Grade, string, error)
}

// gradingServiceImpl implements the GradingService interface
type gradingServiceImpl struct {
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
	gradeRepo      repositories.IGradeRepository
}

// NewGradingService creates a new grading service instance
func NewGradingService(
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	gradeRepo repositories.IGradeRepository,
) GradingService {
	return &gradingServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		gradeRepo:      gradeRepo,
	}
}

// AssignGrade writes the grade for an enrolled student of an existing
// course. The write is a single atomic upsert keyed on the pair.
func (s *gradingServiceImpl) AssignGrade(ctx context.Context, courseID, studentID int64, marks float64) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, courseID, studentID)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperrors.ErrStudentNotEnrolled
	}

	grade := &models.Grade{
		CourseID:  courseID,
		StudentID: studentID,
		Marks:     marks,
	}

	return s.gradeRepo.Upsert(ctx, grade)
}

// GetMyGrade retrieves the calling student's grade for a course together
// with the derived letter
func (s *gradingServiceImpl) GetMyGrade(ctx context.Context, courseID, studentID int64) (*models.Grade, string, error) {
	grade, err := s.gradeRepo.GetByCourseAndStudent(ctx, courseID, studentID)
	if err != nil {
		return nil, "", err
	}

	return grade, LetterForMarks(grade.Marks), nil
}

// LetterForMarks derives the letter grade from numeric marks. Total over
// all reals: marks are not clamped, anything below 60 maps to F.
func LetterForMarks(marks float64) string {
	switch {
	case marks >= 90:
		return "A"
	case marks >= 80:
		return "B"
	case marks >= 70:
		return "C"
	case marks >= 60:
		return "D"
	default:
		return "F"
	}
}
