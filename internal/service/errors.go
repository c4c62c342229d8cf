package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/noah-isme/school-services/internal/repository"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func validationError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

// loadError maps a repository read failure for entity to a typed error.
func loadError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return internalError(err, "failed to load "+entity)
}

// writeError maps a repository write failure to a typed error. A write that
// touched no rows is unprocessable; a delete of a missing row is not found.
func writeError(err error, op, entity string) error {
	switch {
	case errors.Is(err, repository.ErrNoRowsAffected):
		return appErrors.Wrap(err, appErrors.ErrUnprocessable.Code, appErrors.ErrUnprocessable.Status, fmt.Sprintf("failed to %s %s: no rows affected", op, entity))
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	default:
		return internalError(err, fmt.Sprintf("failed to %s %s", op, entity))
	}
}

// checkIDMatch rejects a body id that disagrees with the path id. A zero
// body id is treated as omitted.
func checkIDMatch(pathID, bodyID int64) error {
	if bodyID != 0 && bodyID != pathID {
		return appErrors.Clone(appErrors.ErrValidation, "id in path does not match id in body")
	}
	return nil
}
