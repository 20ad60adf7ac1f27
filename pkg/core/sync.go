// Copyright © 2018 One Concern

// Package core implements the nasadap sync engine: it plans which granules a
// date range maps to, then downloads server-side subsets of them into the
// local cache, concurrently and idempotently.
package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/oneconcern/nasadap/pkg/catalog"
	"github.com/oneconcern/nasadap/pkg/core/status"
	"github.com/oneconcern/nasadap/pkg/dap"
	"github.com/oneconcern/nasadap/pkg/dlogger"
	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/oneconcern/nasadap/pkg/storage"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultConcurrentDownloads = 30
	defaultRetryAttempts       = 5
	defaultRetryInterval       = 3 * time.Second
)

// lister abstracts the catalog for granule URL resolution
type lister interface {
	ListRange(ctx context.Context, from, to time.Time) ([]string, error)
}

// Sync drives granule retrieval for one product of one mission
type Sync struct {
	mission model.MissionDescriptor
	product model.ProductDescriptor
	version int

	datasets    []string
	bounds      dap.Bounds
	cacheStore  storage.Store
	client      *http.Client
	listing     lister
	ledger      Ledger
	skipOnError bool
	synthesize  bool

	concurrentDownloads int
	retryAttempts       int
	retryInterval       time.Duration
	limiter             *rate.Limiter

	counters Counters
	l        *zap.Logger
}

// New builds a sync for one product of one mission.
//
// The dataset selection defaults to the product's full master list and the
// bounding box to the full grid.
func New(mission model.MissionDescriptor, product model.ProductDescriptor, opts ...Option) (*Sync, error) {
	s := &Sync{
		mission:             mission,
		product:             product,
		version:             mission.Version,
		client:              http.DefaultClient,
		concurrentDownloads: defaultConcurrentDownloads,
		retryAttempts:       defaultRetryAttempts,
		retryInterval:       defaultRetryInterval,
		l:                   dlogger.MustGetLogger(dlogger.LogLevelNone),
	}
	for _, apply := range opts {
		apply(s)
	}
	if s.cacheStore == nil {
		return nil, status.ErrNoCacheStore
	}
	if len(s.datasets) == 0 {
		s.datasets = product.Datasets
	}
	if s.listing == nil {
		s.listing = catalog.New(mission, product, s.version,
			catalog.Client(s.client),
			catalog.ConcurrentListings(s.concurrentDownloads),
			catalog.Logger(s.l),
		)
	}
	return s, nil
}

// Entry is one planned download: a granule URL and its local cache key
type Entry struct {
	URL      string
	CacheKey string
}

// Plan resolves the granules published over an inclusive date range into
// download entries, in chronological order.
//
// With catalog resolution (the default), only granules actually published
// are planned. With synthesized resolution, all half-hourly slots of every
// day are planned from the archive naming scheme, without touching the
// server.
func (s *Sync) Plan(ctx context.Context, from, to time.Time) ([]Entry, error) {
	var (
		urls []string
		err  error
	)
	if s.synthesize {
		urls, err = s.synthesizeURLs(from, to)
	} else {
		urls, err = s.listing.ListRange(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(urls))
	for _, url := range urls {
		key, err := model.GetCacheKeyForURL(url)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{URL: url, CacheKey: key})
	}
	s.l.Info("planned granules",
		zap.String("product", s.product.Name),
		zap.String("from", from.Format(model.DateFormat)),
		zap.String("to", to.Format(model.DateFormat)),
		zap.Int("granules", len(entries)),
	)
	return entries, nil
}

// synthesizeURLs renders every half-hourly granule URL of the range from the
// archive naming scheme
func (s *Sync) synthesizeURLs(from, to time.Time) ([]string, error) {
	days := model.DateRange(from, to)
	if len(days) == 0 {
		return nil, fmt.Errorf("invalid date range: %v is before %v",
			to.Format(model.DateFormat), from.Format(model.DateFormat))
	}
	urls := make([]string, 0, len(days)*model.SlotsPerDay)
	for _, day := range days {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			g, err := model.NewGranule(s.mission, s.product, s.version, day, slot)
			if err != nil {
				return nil, err
			}
			urls = append(urls, model.GetURLToArchivePath(s.mission, model.GetArchivePathToGranule(g)))
		}
	}
	return urls, nil
}
