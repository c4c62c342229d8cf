package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-services/internal/models"
)

const userColumns = `id, name, email, role, school_id`

// UserRepository handles persistence for school members.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository instantiates a user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListBySchool returns the members of a school.
func (r *UserRepository) ListBySchool(ctx context.Context, schoolID int64) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users WHERE school_id = $1 ORDER BY id`, schoolID); err != nil {
		return nil, fmt.Errorf("list school users: %w", err)
	}
	return users, nil
}

// ListBySchoolAndRole returns the members of a school holding role.
func (r *UserRepository) ListBySchoolAndRole(ctx context.Context, schoolID int64, role models.UserRole) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE school_id = $1 AND role = $2 ORDER BY id`
	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, schoolID, string(role)); err != nil {
		return nil, fmt.Errorf("list school users by role: %w", err)
	}
	return users, nil
}

// FindByID loads a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Exists reports whether a user with id is stored.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (name, email, role, school_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &user.ID, query, user.Name, user.Email, string(user.Role), user.SchoolID); err != nil {
		return insertError(err, "create user")
	}
	return nil
}

// Update replaces a user record.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	const query = `UPDATE users SET name = :name, email = :email, role = :role, school_id = :school_id WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return expectAffected(res, "update user")
}

// Delete removes a user permanently.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return expectDeleted(res, "delete user")
}
