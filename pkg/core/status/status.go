// Package status exports errors produced by the core package.
package status

import (
	"github.com/oneconcern/nasadap/pkg/errors"
)

var (
	// ErrInterrupted signals that the current background processing has been interrupted
	ErrInterrupted = errors.New("background processing interrupted")

	// ErrNotFound indicates that the archive does not hold the requested granule
	ErrNotFound = errors.New("granule not found on the archive")

	// ErrDownload indicates a granule download that kept failing after retries
	ErrDownload = errors.New("granule download failed")

	// ErrNoCacheStore indicates a sync built without a destination store
	ErrNoCacheStore = errors.New("no cache store configured")

	// ErrLedger indicates a failure of the download ledger
	ErrLedger = errors.New("ledger operation failed")
)
