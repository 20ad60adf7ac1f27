// Copyright © 2018 One Concern

package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oneconcern/nasadap/pkg/core/status"
	"github.com/oneconcern/nasadap/pkg/dap"
	"github.com/oneconcern/nasadap/pkg/errors"
	"github.com/oneconcern/nasadap/pkg/storage"
	storagestatus "github.com/oneconcern/nasadap/pkg/storage/status"
	"go.uber.org/zap"
)

// Result reports the outcome of a Fetch run
type Result struct {
	Planned    int
	Downloaded int
	Skipped    int
	Failed     int
	Bytes      int64
	Failures   []Failure
}

// Failure is a granule that kept failing after retries
type Failure struct {
	Entry
	Err error
}

// Fetch plans the date range and downloads every planned granule subset not
// already cached.
//
// A failed granule aborts the run unless the sync is built with SkipOnError,
// in which case it is recorded in the result and the run carries on.
func (s *Sync) Fetch(ctx context.Context, from, to time.Time) (Result, error) {
	entries, err := s.Plan(ctx, from, to)
	if err != nil {
		return Result{}, err
	}
	return s.downloadEntries(ctx, entries)
}

type downloadChans struct {
	results            chan<- downloadResult
	done               <-chan struct{}
	concurrencyControl <-chan struct{}
}

type downloadResult struct {
	entry    Entry
	skipped  bool
	attempts int
	size     int64
	err      error
}

func (s *Sync) downloadEntries(ctx context.Context, entries []Entry) (Result, error) {
	hs, err := s.bounds.Resolve()
	if err != nil {
		return Result{}, err
	}
	constraint := dap.Constraint(s.datasets, hs)

	resultsC := make(chan downloadResult)
	doneC := make(chan struct{})
	defer close(doneC)

	go func() {
		concurrencyControl := make(chan struct{}, s.concurrentDownloads)
		for _, entry := range entries {
			select {
			case concurrencyControl <- struct{}{}:
			case <-doneC:
				return
			}
			go s.downloadOne(ctx, entry, constraint, downloadChans{
				results:            resultsC,
				done:               doneC,
				concurrencyControl: concurrencyControl,
			})
		}
	}()

	res := Result{Planned: len(entries)}
	for received := 0; received < len(entries); received++ {
		select {
		case r := <-resultsC:
			switch {
			case r.err != nil:
				if !s.skipOnError {
					s.l.Error("granule download failed", zap.String("url", r.entry.URL), zap.Error(r.err))
					return res, r.err
				}
				res.Failed++
				res.Failures = append(res.Failures, Failure{Entry: r.entry, Err: r.err})
				s.l.Warn("skipping failed granule", zap.String("url", r.entry.URL), zap.Error(r.err))
			case r.skipped:
				res.Skipped++
			default:
				res.Downloaded++
				res.Bytes += r.size
			}
		case <-ctx.Done():
			return res, status.ErrInterrupted.Wrap(ctx.Err())
		}
	}
	s.l.Info("fetch complete",
		zap.Int("planned", res.Planned),
		zap.Int("downloaded", res.Downloaded),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
		zap.Int64("bytes", res.Bytes),
	)
	return res, nil
}

// downloadOne retrieves a single granule subset into the cache
func (s *Sync) downloadOne(ctx context.Context, entry Entry, constraint string, chans downloadChans) {
	defer func() {
		<-chans.concurrencyControl
	}()

	result := downloadResult{entry: entry}
	defer func() {
		switch {
		case result.err != nil:
			s.counters.Failed.Inc()
		case result.skipped:
			s.counters.Skipped.Inc()
		default:
			s.counters.Downloaded.Inc()
			s.counters.Bytes.Add(result.size)
		}
		select {
		case chans.results <- result:
		case <-chans.done:
		}
	}()

	has, err := s.cacheStore.Has(ctx, entry.CacheKey)
	if err != nil {
		result.err = err
		return
	}
	if has {
		s.l.Debug("already cached", zap.String("key", entry.CacheKey))
		result.skipped = true
		return
	}

	subsetURL := entry.URL + ".nc4" + constraint
	operation := func() error {
		result.attempts++
		n, err := s.transfer(ctx, subsetURL, entry.CacheKey)
		if err != nil {
			return err
		}
		result.size = n
		return nil
	}
	notify := func(err error, next time.Duration) {
		s.l.Info("retrying granule",
			zap.String("url", entry.URL),
			zap.Duration("in", next),
			zap.Error(err),
		)
	}
	err = backoff.RetryNotify(operation,
		backoff.WithContext(
			backoff.WithMaxRetries(
				backoff.NewConstantBackOff(s.retryInterval), uint64(s.retryAttempts-1)),
			ctx),
		notify)
	if err != nil {
		if errors.Is(err, storagestatus.ErrExists) {
			// another worker (or an earlier run) landed the granule first
			result.skipped = true
			return
		}
		result.err = status.ErrDownload.Wrap(err)
		return
	}

	if s.ledger != nil {
		if err := s.ledger.Record(Record{
			CacheKey:   entry.CacheKey,
			URL:        entry.URL,
			Size:       result.size,
			Attempts:   result.attempts,
			Downloaded: time.Now().UTC(),
		}); err != nil {
			result.err = status.ErrLedger.Wrap(err)
		}
	}
}

// transfer performs one download attempt, streaming the response into the
// cache store
func (s *Sync) transfer(ctx context.Context, url, key string) (int64, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return 0, backoff.Permanent(err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, backoff.Permanent(err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, backoff.Permanent(status.ErrNotFound.Wrap(fmt.Errorf("granule %q", url)))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return 0, backoff.Permanent(fmt.Errorf("granule %q: access denied (status %d)", url, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("granule %q: unexpected status %d", url, resp.StatusCode)
	}

	counter := &countingReader{reader: resp.Body}
	if err := s.cacheStore.Put(ctx, key, counter, storage.NoOverWrite); err != nil {
		if errors.Is(err, storagestatus.ErrExists) {
			return 0, backoff.Permanent(err)
		}
		// remove a possibly half-written object before the next attempt
		_ = s.cacheStore.Delete(ctx, key)
		return 0, err
	}
	return counter.count, nil
}

type countingReader struct {
	reader io.Reader
	count  int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.count += int64(n)
	return n, err
}
