package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

const gradeColumns = `id, student_id, class_subject_id, grade_value, date`

// GradeRepository handles persistence for dated grades.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository instantiates a grade repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// List returns every grade in storage order.
func (r *GradeRepository) List(ctx context.Context) ([]models.Grade, error) {
	grades := make([]models.Grade, 0)
	if err := r.db.SelectContext(ctx, &grades, `SELECT `+gradeColumns+` FROM grades ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// FindByID loads a grade by identifier.
func (r *GradeRepository) FindByID(ctx context.Context, id int64) (*models.Grade, error) {
	var grade models.Grade
	if err := r.db.GetContext(ctx, &grade, `SELECT `+gradeColumns+` FROM grades WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find grade: %w", err)
	}
	return &grade, nil
}

// ListByStudentInWindow returns the student's grades dated inside the window.
func (r *GradeRepository) ListByStudentInWindow(ctx context.Context, studentID int64, window models.Window) ([]models.Grade, error) {
	const query = `SELECT ` + gradeColumns + ` FROM grades WHERE student_id = $1 AND date >= $2 AND date <= $3 ORDER BY id`
	grades := make([]models.Grade, 0)
	if err := r.db.SelectContext(ctx, &grades, query, studentID, window.Start, window.End); err != nil {
		return nil, fmt.Errorf("list student grades in window: %w", err)
	}
	return grades, nil
}

// ListByClassSubjectInWindow returns the class subject's grades dated inside the window.
func (r *GradeRepository) ListByClassSubjectInWindow(ctx context.Context, classSubjectID int64, window models.Window) ([]models.Grade, error) {
	const query = `SELECT ` + gradeColumns + ` FROM grades WHERE class_subject_id = $1 AND date >= $2 AND date <= $3 ORDER BY id`
	grades := make([]models.Grade, 0)
	if err := r.db.SelectContext(ctx, &grades, query, classSubjectID, window.Start, window.End); err != nil {
		return nil, fmt.Errorf("list class subject grades in window: %w", err)
	}
	return grades, nil
}

// ListByStudentAndClassSubject returns all grades of a student in one class subject.
func (r *GradeRepository) ListByStudentAndClassSubject(ctx context.Context, studentID, classSubjectID int64) ([]models.Grade, error) {
	const query = `SELECT ` + gradeColumns + ` FROM grades WHERE student_id = $1 AND class_subject_id = $2 ORDER BY id`
	grades := make([]models.Grade, 0)
	if err := r.db.SelectContext(ctx, &grades, query, studentID, classSubjectID); err != nil {
		return nil, fmt.Errorf("list student class subject grades: %w", err)
	}
	return grades, nil
}

// Create inserts a grade and stores the generated id on it.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	const query = `INSERT INTO grades (student_id, class_subject_id, grade_value, date) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &grade.ID, query, grade.StudentID, grade.ClassSubjectID, grade.GradeValue, grade.Date); err != nil {
		return insertError(err, "create grade")
	}
	return nil
}

// Update replaces every mutable column of a grade.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	const query = `UPDATE grades SET student_id = :student_id, class_subject_id = :class_subject_id, grade_value = :grade_value, date = :date WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, grade)
	if err != nil {
		return fmt.Errorf("update grade: %w", err)
	}
	return expectAffected(res, "update grade")
}

// Delete removes a grade permanently.
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}
	return expectDeleted(res, "delete grade")
}
