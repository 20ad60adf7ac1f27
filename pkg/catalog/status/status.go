// Package status exports errors produced by the catalog package.
package status

import (
	"github.com/oneconcern/nasadap/pkg/errors"
)

var (
	// ErrNotFound indicates that no catalog document exists for the requested day
	ErrNotFound = errors.New("no catalog for this day")

	// ErrCatalog indicates an invalid or unexpected catalog document
	ErrCatalog = errors.New("invalid catalog document")

	// ErrEmpty indicates that a catalog walk found no data at all
	ErrEmpty = errors.New("catalog holds no data for this product")

	// ErrInterrupted signals that the current background processing has been interrupted
	ErrInterrupted = errors.New("background processing interrupted")
)
