package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

const termColumns = `id, school_id, name, start_date, end_date`

// TermRepository handles persistence for academic terms.
type TermRepository struct {
	db *sqlx.DB
}

// NewTermRepository instantiates a term repository.
func NewTermRepository(db *sqlx.DB) *TermRepository {
	return &TermRepository{db: db}
}

// List returns every term.
func (r *TermRepository) List(ctx context.Context) ([]models.Term, error) {
	terms := make([]models.Term, 0)
	if err := r.db.SelectContext(ctx, &terms, `SELECT `+termColumns+` FROM terms ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// ListBySchool returns the terms of a school.
func (r *TermRepository) ListBySchool(ctx context.Context, schoolID int64) ([]models.Term, error) {
	terms := make([]models.Term, 0)
	if err := r.db.SelectContext(ctx, &terms, `SELECT `+termColumns+` FROM terms WHERE school_id = $1 ORDER BY id`, schoolID); err != nil {
		return nil, fmt.Errorf("list school terms: %w", err)
	}
	return terms, nil
}

// FindByID loads a term by identifier.
func (r *TermRepository) FindByID(ctx context.Context, id int64) (*models.Term, error) {
	var term models.Term
	if err := r.db.GetContext(ctx, &term, `SELECT `+termColumns+` FROM terms WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find term: %w", err)
	}
	return &term, nil
}

// Create inserts a new term record.
func (r *TermRepository) Create(ctx context.Context, term *models.Term) error {
	const query = `INSERT INTO terms (school_id, name, start_date, end_date) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &term.ID, query, term.SchoolID, term.Name, term.StartDate, term.EndDate); err != nil {
		return insertError(err, "create term")
	}
	return nil
}

// Update modifies an existing term.
func (r *TermRepository) Update(ctx context.Context, term *models.Term) error {
	const query = `UPDATE terms SET school_id = :school_id, name = :name, start_date = :start_date, end_date = :end_date WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, term)
	if err != nil {
		return fmt.Errorf("update term: %w", err)
	}
	return expectAffected(res, "update term")
}

// Delete removes a term permanently.
func (r *TermRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM terms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete term: %w", err)
	}
	return expectDeleted(res, "delete term")
}
