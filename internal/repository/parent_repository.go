package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

const parentColumns = `id, name, email, school_id, student_id`

// ParentRepository handles persistence for student guardians.
type ParentRepository struct {
	db *sqlx.DB
}

// NewParentRepository instantiates a parent repository.
func NewParentRepository(db *sqlx.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

// List returns every parent.
func (r *ParentRepository) List(ctx context.Context) ([]models.Parent, error) {
	parents := make([]models.Parent, 0)
	if err := r.db.SelectContext(ctx, &parents, `SELECT `+parentColumns+` FROM parents ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list parents: %w", err)
	}
	return parents, nil
}

// ListBySchool returns the parents registered with a school.
func (r *ParentRepository) ListBySchool(ctx context.Context, schoolID int64) ([]models.Parent, error) {
	parents := make([]models.Parent, 0)
	if err := r.db.SelectContext(ctx, &parents, `SELECT `+parentColumns+` FROM parents WHERE school_id = $1 ORDER BY id`, schoolID); err != nil {
		return nil, fmt.Errorf("list school parents: %w", err)
	}
	return parents, nil
}

// FindByID loads a parent by identifier.
func (r *ParentRepository) FindByID(ctx context.Context, id int64) (*models.Parent, error) {
	var parent models.Parent
	if err := r.db.GetContext(ctx, &parent, `SELECT `+parentColumns+` FROM parents WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find parent: %w", err)
	}
	return &parent, nil
}

// Create inserts a new parent.
func (r *ParentRepository) Create(ctx context.Context, parent *models.Parent) error {
	const query = `INSERT INTO parents (name, email, school_id, student_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &parent.ID, query, parent.Name, parent.Email, parent.SchoolID, parent.StudentID); err != nil {
		return insertError(err, "create parent")
	}
	return nil
}

// Update replaces a parent record.
func (r *ParentRepository) Update(ctx context.Context, parent *models.Parent) error {
	const query = `UPDATE parents SET name = :name, email = :email, school_id = :school_id, student_id = :student_id WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, parent)
	if err != nil {
		return fmt.Errorf("update parent: %w", err)
	}
	return expectAffected(res, "update parent")
}

// Delete removes a parent permanently.
func (r *ParentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parent: %w", err)
	}
	return expectDeleted(res, "delete parent")
}
