package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/school-services/internal/models"
)

const homeworkColumns = `id, class_subject_id, description, due_date`

// HomeworkRepository handles persistence for homework assignments.
type HomeworkRepository struct {
	db *sqlx.DB
}

// NewHomeworkRepository instantiates a homework repository.
func NewHomeworkRepository(db *sqlx.DB) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

// List returns every homework.
func (r *HomeworkRepository) List(ctx context.Context) ([]models.Homework, error) {
	items := make([]models.Homework, 0)
	if err := r.db.SelectContext(ctx, &items, `SELECT `+homeworkColumns+` FROM homeworks ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list homeworks: %w", err)
	}
	return items, nil
}

// FindByID loads a homework by identifier.
func (r *HomeworkRepository) FindByID(ctx context.Context, id int64) (*models.Homework, error) {
	var item models.Homework
	if err := r.db.GetContext(ctx, &item, `SELECT `+homeworkColumns+` FROM homeworks WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find homework: %w", err)
	}
	return &item, nil
}

// ListByClassSubject returns every homework of a class subject.
func (r *HomeworkRepository) ListByClassSubject(ctx context.Context, classSubjectID int64) ([]models.Homework, error) {
	items := make([]models.Homework, 0)
	if err := r.db.SelectContext(ctx, &items, `SELECT `+homeworkColumns+` FROM homeworks WHERE class_subject_id = $1 ORDER BY id`, classSubjectID); err != nil {
		return nil, fmt.Errorf("list class subject homeworks: %w", err)
	}
	return items, nil
}

// ListByClassSubjectInWindow returns homework of a class subject due inside the window.
func (r *HomeworkRepository) ListByClassSubjectInWindow(ctx context.Context, classSubjectID int64, window models.Window) ([]models.Homework, error) {
	const query = `SELECT ` + homeworkColumns + ` FROM homeworks WHERE class_subject_id = $1 AND due_date >= $2 AND due_date <= $3 ORDER BY id`
	items := make([]models.Homework, 0)
	if err := r.db.SelectContext(ctx, &items, query, classSubjectID, window.Start, window.End); err != nil {
		return nil, fmt.Errorf("list class subject homeworks in window: %w", err)
	}
	return items, nil
}

// ListByClassSubjectDueFrom returns homework of a class subject due on or after from.
func (r *HomeworkRepository) ListByClassSubjectDueFrom(ctx context.Context, classSubjectID int64, from models.Date) ([]models.Homework, error) {
	const query = `SELECT ` + homeworkColumns + ` FROM homeworks WHERE class_subject_id = $1 AND due_date >= $2 ORDER BY id`
	items := make([]models.Homework, 0)
	if err := r.db.SelectContext(ctx, &items, query, classSubjectID, from); err != nil {
		return nil, fmt.Errorf("list class subject homeworks due from: %w", err)
	}
	return items, nil
}

// ListByClassSubjectsDueFrom returns homework of any listed class subject due on or after from.
func (r *HomeworkRepository) ListByClassSubjectsDueFrom(ctx context.Context, classSubjectIDs []int64, from models.Date) ([]models.Homework, error) {
	const query = `SELECT ` + homeworkColumns + ` FROM homeworks WHERE class_subject_id = ANY($1) AND due_date >= $2 ORDER BY id`
	items := make([]models.Homework, 0)
	if err := r.db.SelectContext(ctx, &items, query, pq.Array(classSubjectIDs), from); err != nil {
		return nil, fmt.Errorf("list class subjects homeworks due from: %w", err)
	}
	return items, nil
}

// ListByClassSubjectsInWindow returns homework of any listed class subject due inside the window.
func (r *HomeworkRepository) ListByClassSubjectsInWindow(ctx context.Context, classSubjectIDs []int64, window models.Window) ([]models.Homework, error) {
	const query = `SELECT ` + homeworkColumns + ` FROM homeworks WHERE class_subject_id = ANY($1) AND due_date >= $2 AND due_date <= $3 ORDER BY id`
	items := make([]models.Homework, 0)
	if err := r.db.SelectContext(ctx, &items, query, pq.Array(classSubjectIDs), window.Start, window.End); err != nil {
		return nil, fmt.Errorf("list class subjects homeworks in window: %w", err)
	}
	return items, nil
}

// Create inserts a homework.
func (r *HomeworkRepository) Create(ctx context.Context, item *models.Homework) error {
	const query = `INSERT INTO homeworks (class_subject_id, description, due_date) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query, item.ClassSubjectID, item.Description, item.DueDate); err != nil {
		return insertError(err, "create homework")
	}
	return nil
}

// Update replaces a homework.
func (r *HomeworkRepository) Update(ctx context.Context, item *models.Homework) error {
	const query = `UPDATE homeworks SET class_subject_id = :class_subject_id, description = :description, due_date = :due_date WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("update homework: %w", err)
	}
	return expectAffected(res, "update homework")
}

// Delete removes a homework.
func (r *HomeworkRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM homeworks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete homework: %w", err)
	}
	return expectDeleted(res, "delete homework")
}
