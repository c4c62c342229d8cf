package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

const (
	assessmentTypeColumns = `id, subject_id, name`
	termAssessmentColumns = `id, student_id, subject_id, assessment_type_id, grade_value, term_id`
)

// AssessmentTypeRepository handles persistence for assessment types.
type AssessmentTypeRepository struct {
	db *sqlx.DB
}

// NewAssessmentTypeRepository instantiates an assessment type repository.
func NewAssessmentTypeRepository(db *sqlx.DB) *AssessmentTypeRepository {
	return &AssessmentTypeRepository{db: db}
}

// List returns every assessment type.
func (r *AssessmentTypeRepository) List(ctx context.Context) ([]models.AssessmentType, error) {
	items := make([]models.AssessmentType, 0)
	if err := r.db.SelectContext(ctx, &items, `SELECT `+assessmentTypeColumns+` FROM assessment_types ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list assessment types: %w", err)
	}
	return items, nil
}

// FindByID loads an assessment type by identifier.
func (r *AssessmentTypeRepository) FindByID(ctx context.Context, id int64) (*models.AssessmentType, error) {
	var item models.AssessmentType
	if err := r.db.GetContext(ctx, &item, `SELECT `+assessmentTypeColumns+` FROM assessment_types WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find assessment type: %w", err)
	}
	return &item, nil
}

// Exists reports whether an assessment type with the id is stored.
func (r *AssessmentTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM assessment_types WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("check assessment type: %w", err)
	}
	return exists, nil
}

// Create inserts an assessment type.
func (r *AssessmentTypeRepository) Create(ctx context.Context, item *models.AssessmentType) error {
	const query = `INSERT INTO assessment_types (subject_id, name) VALUES ($1, $2) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query, item.SubjectID, item.Name); err != nil {
		return insertError(err, "create assessment type")
	}
	return nil
}

// Update replaces an assessment type.
func (r *AssessmentTypeRepository) Update(ctx context.Context, item *models.AssessmentType) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE assessment_types SET subject_id = :subject_id, name = :name WHERE id = :id`, item)
	if err != nil {
		return fmt.Errorf("update assessment type: %w", err)
	}
	return expectAffected(res, "update assessment type")
}

// Delete removes an assessment type; dependent term assessments are removed
// by the ON DELETE CASCADE foreign key.
func (r *AssessmentTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessment_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assessment type: %w", err)
	}
	return expectDeleted(res, "delete assessment type")
}

// TermAssessmentRepository handles persistence for term assessments.
type TermAssessmentRepository struct {
	db *sqlx.DB
}

// NewTermAssessmentRepository instantiates a term assessment repository.
func NewTermAssessmentRepository(db *sqlx.DB) *TermAssessmentRepository {
	return &TermAssessmentRepository{db: db}
}

// List returns every term assessment.
func (r *TermAssessmentRepository) List(ctx context.Context) ([]models.TermAssessment, error) {
	items := make([]models.TermAssessment, 0)
	if err := r.db.SelectContext(ctx, &items, `SELECT `+termAssessmentColumns+` FROM term_assessments ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list term assessments: %w", err)
	}
	return items, nil
}

// FindByID loads a term assessment by identifier.
func (r *TermAssessmentRepository) FindByID(ctx context.Context, id int64) (*models.TermAssessment, error) {
	var item models.TermAssessment
	if err := r.db.GetContext(ctx, &item, `SELECT `+termAssessmentColumns+` FROM term_assessments WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find term assessment: %w", err)
	}
	return &item, nil
}

// Create inserts a term assessment.
func (r *TermAssessmentRepository) Create(ctx context.Context, item *models.TermAssessment) error {
	const query = `INSERT INTO term_assessments (student_id, subject_id, assessment_type_id, grade_value, term_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query, item.StudentID, item.SubjectID, item.AssessmentTypeID, item.GradeValue, item.TermID); err != nil {
		return insertError(err, "create term assessment")
	}
	return nil
}

// Update replaces a term assessment.
func (r *TermAssessmentRepository) Update(ctx context.Context, item *models.TermAssessment) error {
	const query = `UPDATE term_assessments SET student_id = :student_id, subject_id = :subject_id, assessment_type_id = :assessment_type_id, grade_value = :grade_value, term_id = :term_id WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update term assessment: %w", err)
	}
	return expectAffected(res, "update term assessment")
}

// Delete removes a term assessment.
func (r *TermAssessmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM term_assessments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete term assessment: %w", err)
	}
	return expectDeleted(res, "delete term assessment")
}
