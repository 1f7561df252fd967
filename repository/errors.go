package repository

import (
	"errors"

	"tipovacka/app_error"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	sqlStateInsufficientPrivilege = "42501"
	sqlStateUniqueViolation       = "23505"
	sqlStateForeignKeyViolation   = "23503"
	sqlStateCheckViolation        = "23514"
)

// classify maps a gorm/pgx error onto the app_error taxonomy.
func classify(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return app_error.Wrap(app_error.NotFound, err, format, args...)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateInsufficientPrivilege:
			return app_error.Wrap(app_error.PermissionDenied, err, format, args...)
		case sqlStateUniqueViolation, sqlStateForeignKeyViolation, sqlStateCheckViolation:
			return app_error.Wrap(app_error.Invalid, err, format, args...)
		}
	}
	return app_error.Wrap(app_error.Transient, err, format, args...)
}

// notFoundIfNone turns a write that matched no row into a NotFound error.
func notFoundIfNone(result *gorm.DB, format string, args ...any) error {
	if result.Error != nil {
		return classify(result.Error, format, args...)
	}
	if result.RowsAffected == 0 {
		return app_error.Wrap(app_error.NotFound, gorm.ErrRecordNotFound, format, args...)
	}
	return nil
}
