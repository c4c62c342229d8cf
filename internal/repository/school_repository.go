package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

// SchoolRepository handles persistence for schools.
type SchoolRepository struct {
	db *sqlx.DB
}

// NewSchoolRepository instantiates a school repository.
func NewSchoolRepository(db *sqlx.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// List returns every school.
func (r *SchoolRepository) List(ctx context.Context) ([]models.School, error) {
	schools := make([]models.School, 0)
	if err := r.db.SelectContext(ctx, &schools, `SELECT id, name, address FROM schools ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return schools, nil
}

// FindByID loads a school by identifier.
func (r *SchoolRepository) FindByID(ctx context.Context, id int64) (*models.School, error) {
	var school models.School
	if err := r.db.GetContext(ctx, &school, `SELECT id, name, address FROM schools WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find school: %w", err)
	}
	return &school, nil
}

// Exists reports whether a school with id is stored.
func (r *SchoolRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM schools WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("check school exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new school.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	const query = `INSERT INTO schools (name, address) VALUES ($1, $2) RETURNING id`
	if err := r.db.GetContext(ctx, &school.ID, query, school.Name, school.Address); err != nil {
		return insertError(err, "create school")
	}
	return nil
}

// Update replaces a school record.
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE schools SET name = :name, address = :address WHERE id = :id`, school)
	if err != nil {
		return fmt.Errorf("update school: %w", err)
	}
	return expectAffected(res, "update school")
}

// Delete removes a school permanently.
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete school: %w", err)
	}
	return expectDeleted(res, "delete school")
}
