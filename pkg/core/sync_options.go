// Copyright © 2018 One Concern

package core

import (
	"net/http"
	"time"

	"github.com/oneconcern/nasadap/pkg/dap"
	"github.com/oneconcern/nasadap/pkg/storage"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Option is a functor to build a sync with some options
type Option func(*Sync)

// Version overrides the mission's default product version
func Version(v int) Option {
	return func(s *Sync) {
		if v > 0 {
			s.version = v
		}
	}
}

// Datasets restricts the dataset variables extracted from each granule.
// The selection is assumed validated against the product.
func Datasets(datasets []string) Option {
	return func(s *Sync) {
		s.datasets = datasets
	}
}

// Bounds sets the geographical bounding box subsetting each granule
func Bounds(b dap.Bounds) Option {
	return func(s *Sync) {
		s.bounds = b
	}
}

// CacheStore defines the destination store for downloaded granules
func CacheStore(store storage.Store) Option {
	return func(s *Sync) {
		s.cacheStore = store
	}
}

// HTTPClient sets the client used for archive requests.
// Pass an authenticated session client when the endpoint is protected.
func HTTPClient(client *http.Client) Option {
	return func(s *Sync) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLister overrides granule URL resolution (used by tests)
func WithLister(l lister) Option {
	return func(s *Sync) {
		s.listing = l
	}
}

// WithLedger records downloads in a ledger
func WithLedger(ledger Ledger) Option {
	return func(s *Sync) {
		s.ledger = ledger
	}
}

// SynthesizeURLs plans granule URLs from the archive naming scheme instead
// of listing the catalog
func SynthesizeURLs(enabled bool) Option {
	return func(s *Sync) {
		s.synthesize = enabled
	}
}

// SkipOnError records failed granules and carries on instead of aborting the
// run on the first failure
func SkipOnError(enabled bool) Option {
	return func(s *Sync) {
		s.skipOnError = enabled
	}
}

// ConcurrentDownloads tunes the level of concurrency when downloading
// granules
func ConcurrentDownloads(concurrentDownloads int) Option {
	return func(s *Sync) {
		if concurrentDownloads > 0 {
			s.concurrentDownloads = concurrentDownloads
		}
	}
}

// RetryAttempts tunes how many times a granule download is attempted before
// being declared failed
func RetryAttempts(attempts int) Option {
	return func(s *Sync) {
		if attempts > 0 {
			s.retryAttempts = attempts
		}
	}
}

// RetryInterval tunes the pause between download attempts
func RetryInterval(interval time.Duration) Option {
	return func(s *Sync) {
		if interval > 0 {
			s.retryInterval = interval
		}
	}
}

// RateLimit caps the request rate against the archive, in requests per
// second. Zero means no limit.
func RateLimit(rps float64) Option {
	return func(s *Sync) {
		if rps > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// Logger injects a logging facility into sync operations
func Logger(l *zap.Logger) Option {
	return func(s *Sync) {
		if l != nil {
			s.l = l
		}
	}
}
