package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoRowsAffected is returned when a write that must touch exactly one row
// touched none.
var ErrNoRowsAffected = errors.New("no rows affected")

func expectAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// expectDeleted maps a zero-row delete to sql.ErrNoRows so callers can
// report not found.
func expectDeleted(res sql.Result, op string) error {
	if err := expectAffected(res, op); err != nil {
		if errors.Is(err, ErrNoRowsAffected) {
			return sql.ErrNoRows
		}
		return err
	}
	return nil
}

func insertError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRowsAffected
	}
	return fmt.Errorf("%s: %w", op, err)
}
