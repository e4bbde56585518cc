package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/courseboard/internal/app/models"
	"github.com/deniz/courseboard/internal/pkg/apperrors"
)

// IGradeRepository defines the interface for grade database operations
type IGradeRepository interface {
	Upsert(ctx context.Context, grade *models.Grade) error
	GetByCourseAndStudent(ctx context.Context, courseID, studentID int64) (*models.Grade, error)
}

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// Upsert writes the grade for a (course, student) pair as a single atomic
// statement. The unique constraint on the pair makes concurrent identical
// requests converge on one row instead of racing a read-then-write.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.Grade) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO grades (course_id, student_id, marks)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id, student_id)
		DO UPDATE SET marks = EXCLUDED.marks, updated_at = NOW()
		RETURNING id`,
		grade.CourseID, grade.StudentID, grade.Marks).Scan(&grade.ID)

	if err != nil {
		return fmt.Errorf("error upserting grade: %w", err)
	}

	return nil
}

// GetByCourseAndStudent retrieves the grade for a (course, student) pair
func (r *GradeRepository) GetByCourseAndStudent(ctx context.Context, courseID, studentID int64) (*models.Grade, error) {
	grade := &models.Grade{}
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, student_id, marks, created_at, updated_at
		FROM grades
		WHERE course_id = $1 AND student_id = $2`,
		courseID, studentID).Scan(
		&grade.ID, &grade.CourseID, &grade.StudentID, &grade.Marks,
		&grade.CreatedAt, &grade.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return grade, nil
}
