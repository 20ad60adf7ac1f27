// Copyright © 2018 One Concern

package core

import (
	"time"
)

// Record describes one downloaded granule, as kept by the ledger
type Record struct {
	CacheKey   string    `json:"cacheKey" yaml:"cacheKey"`
	URL        string    `json:"url" yaml:"url"`
	Size       int64     `json:"size" yaml:"size"`
	Attempts   int       `json:"attempts" yaml:"attempts"`
	Downloaded time.Time `json:"downloaded" yaml:"downloaded"`
}

// Ledger keeps track of the granules a cache directory holds and where they
// came from.
//
// The ledger is advisory: the cache store remains the source of truth for
// idempotence, the ledger backs reporting commands.
type Ledger interface {
	// Record upserts a download record
	Record(Record) error

	// Get retrieves the record of a cache key, with ok reporting whether it exists
	Get(cacheKey string) (Record, bool, error)

	// Apply iterates over all records, in cache key order
	Apply(func(Record) error) error

	// Close releases the underlying resources
	Close() error
}
