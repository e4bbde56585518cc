package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/app/repositories"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	Create(ctx context.Context, title, description string, teacherID int64) (*models.Course, error)
	Update(ctx context.Context, id int64, title, description string, teacherID int64) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Course, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
	ListStudents(ctx context.Context, courseID int64) ([]*models.User, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     repositories.ICourseRepository
	userRepo       repositories.IUserRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// validateCourse validates course data before database operations
func (s *courseServiceImpl) validateCourse(ctx context.Context, title string, teacherID int64) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if teacherID <= 0 {
		return fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	// The referenced user must exist and actually be a teacher
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return apperrors.ErrTeacherNotFound
	}
	if teacher.RoleType != models.RoleTeacher {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Create creates a new course
func (s *courseServiceImpl) Create(ctx context.Context, title, description string, teacherID int64) (*models.Course, error) {
	if err := s.validateCourse(ctx, title, teacherID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:       title,
		Description: description,
		TeacherID:   teacherID,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	course.ID = id

	return course, nil
}

// Update updates an existing course
func (s *courseServiceImpl) Update(ctx context.Context, id int64, title, description string, teacherID int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	if err := s.validateCourse(ctx, title, teacherID); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:          id,
		Title:       title,
		Description: description,
		TeacherID:   teacherID,
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete deletes a course by ID
func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	return s.courseRepo.Delete(ctx, id)
}

// List retrieves all courses with teacher expanded, for any authenticated role
func (s *courseServiceImpl) List(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListWithTeacher(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ListAll retrieves all courses with teacher and student relations expanded
func (s *courseServiceImpl) ListAll(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListWithStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ListByTeacher retrieves the calling teacher's courses with rosters expanded
func (s *courseServiceImpl) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// ListStudents retrieves the roster of a course
func (s *courseServiceImpl) ListStudents(ctx context.Context, courseID int64) ([]*models.User, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	students, err := s.enrollmentRepo.ListStudents(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}
