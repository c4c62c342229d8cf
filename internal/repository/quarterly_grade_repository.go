package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

const quarterlyGradeColumns = `id, student_id, subject_id, grade_value, term_id`

// QuarterlyGradeRepository handles persistence for per-term final grades.
type QuarterlyGradeRepository struct {
	db *sqlx.DB
}

// NewQuarterlyGradeRepository instantiates a quarterly grade repository.
func NewQuarterlyGradeRepository(db *sqlx.DB) *QuarterlyGradeRepository {
	return &QuarterlyGradeRepository{db: db}
}

// List returns every quarterly grade.
func (r *QuarterlyGradeRepository) List(ctx context.Context) ([]models.QuarterlyGrade, error) {
	grades := make([]models.QuarterlyGrade, 0)
	if err := r.db.SelectContext(ctx, &grades, `SELECT `+quarterlyGradeColumns+` FROM quarterly_grades ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list quarterly grades: %w", err)
	}
	return grades, nil
}

// FindByID loads a quarterly grade by identifier.
func (r *QuarterlyGradeRepository) FindByID(ctx context.Context, id int64) (*models.QuarterlyGrade, error) {
	var grade models.QuarterlyGrade
	if err := r.db.GetContext(ctx, &grade, `SELECT `+quarterlyGradeColumns+` FROM quarterly_grades WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find quarterly grade: %w", err)
	}
	return &grade, nil
}

// ListByStudentAndTerm matches on the stored term id; no date window applies.
func (r *QuarterlyGradeRepository) ListByStudentAndTerm(ctx context.Context, studentID, termID int64) ([]models.QuarterlyGrade, error) {
	const query = `SELECT ` + quarterlyGradeColumns + ` FROM quarterly_grades WHERE student_id = $1 AND term_id = $2 ORDER BY id`
	grades := make([]models.QuarterlyGrade, 0)
	if err := r.db.SelectContext(ctx, &grades, query, studentID, termID); err != nil {
		return nil, fmt.Errorf("list student quarterly grades: %w", err)
	}
	return grades, nil
}

// Create inserts a quarterly grade.
func (r *QuarterlyGradeRepository) Create(ctx context.Context, grade *models.QuarterlyGrade) error {
	const query = `INSERT INTO quarterly_grades (student_id, subject_id, grade_value, term_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &grade.ID, query, grade.StudentID, grade.SubjectID, grade.GradeValue, grade.TermID); err != nil {
		return insertError(err, "create quarterly grade")
	}
	return nil
}

// Update replaces a quarterly grade.
func (r *QuarterlyGradeRepository) Update(ctx context.Context, grade *models.QuarterlyGrade) error {
	const query = `UPDATE quarterly_grades SET student_id = :student_id, subject_id = :subject_id, grade_value = :grade_value, term_id = :term_id WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, grade)
	if err != nil {
		return fmt.Errorf("update quarterly grade: %w", err)
	}
	return expectAffected(res, "update quarterly grade")
}

// Delete removes a quarterly grade.
func (r *QuarterlyGradeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quarterly_grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quarterly grade: %w", err)
	}
	return expectDeleted(res, "delete quarterly grade")
}
