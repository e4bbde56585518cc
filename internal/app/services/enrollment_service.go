package services

import (
	"context"
	"fmt"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/app/repositories"
)

// EnrollmentService defines the interface for student enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, studentID int64) error
	Withdraw(ctx context.Context, courseID, studentID int64) error
	ListMyCourses(ctx context.Context, studentID int64) ([]*models.StudentCourse, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
) EnrollmentService {
	return &enrollmentServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Enroll adds the calling student to a course. Idempotent.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, courseID, studentID int64) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	return s.enrollmentRepo.Enroll(ctx, courseID, studentID)
}

// Withdraw removes the calling student from a course
func (s *enrollmentServiceImpl) Withdraw(ctx context.Context, courseID, studentID int64) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	return s.enrollmentRepo.Withdraw(ctx, courseID, studentID)
}

// ListMyCourses retrieves the calling student's enrolled courses with marks
func (s *enrollmentServiceImpl) ListMyCourses(ctx context.Context, studentID int64) ([]*models.StudentCourse, error) {
	courses, err := s.enrollmentRepo.ListStudentCourses(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}
	return courses, nil
}
