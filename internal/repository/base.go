// Package repository implements the data access layer for the application.
package repository

import (
	"errors"
	"strings"

	"github.com/cmcummings/warechat/internal/models"
	"github.com/cmcummings/warechat/internal/observability"

	"gorm.io/gorm"
)

// DefaultPageSize is the pagination policy for thread pages and listing
// queries: ten posts or previews per fetch.
const DefaultPageSize = 10

// wrapError maps a raw GORM error onto the layer's typed taxonomy.
// Not-found and unique-violation outcomes are expected results; everything
// else is a storage failure and counted as such.
func wrapError(err error, table, resource string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	if isUniqueConstraintError(err) {
		return models.NewConflictError(resource + " already exists")
	}
	observability.StorageErrorRate.WithLabelValues(table).Inc()
	return models.NewStorageError(err)
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite phrasing for tests
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// isForeignKeyError checks if a DB error is a foreign key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL FK violation SQLSTATE 23503; SQLite phrasing for tests
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "23503")
}
