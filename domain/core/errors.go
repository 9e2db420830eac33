package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
	ErrDatasetNotFound = fmt.Errorf("%w: dataset", ErrNotFound)

	// Schema and ingestion errors
	ErrSchemaInvalid      = errors.New("required columns missing")
	ErrUnknownDatasetKind = errors.New("unknown dataset kind")
	ErrFileUnreadable     = errors.New("input file unreadable")

	// Data quality errors
	ErrEmptyTable       = errors.New("table has no rows")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// NewSchemaError reports missing required columns for a dataset kind
func NewSchemaError(kind string, missing []string) error {
	return fmt.Errorf("%w for %s: %v", ErrSchemaInvalid, kind, missing)
}

// NewFileError wraps a low-level read failure with the dataset it affects
func NewFileError(kind string, err error) error {
	return fmt.Errorf("%w (%s): %v", ErrFileUnreadable, kind, err)
}

// IsNotFoundError checks for any not-found condition
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSchemaError checks for a schema validation failure
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchemaInvalid)
}

// IsFileError checks for an upstream file failure
func IsFileError(err error) bool {
	return errors.Is(err, ErrFileUnreadable)
}
