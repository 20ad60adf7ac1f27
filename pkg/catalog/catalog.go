// Copyright © 2018 One Concern

// Package catalog lists the granules available on a GES DISC OPeNDAP
// endpoint, by retrieving and parsing its THREDDS catalog documents.
package catalog

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"time"

	"github.com/oneconcern/nasadap/pkg/catalog/status"
	"github.com/oneconcern/nasadap/pkg/dlogger"
	"github.com/oneconcern/nasadap/pkg/model"
	"go.uber.org/zap"
)

const defaultConcurrentListings = 30

// Catalog lists granules of one product of one mission
type Catalog struct {
	mission model.MissionDescriptor
	product model.ProductDescriptor
	version int

	client             *http.Client
	concurrentListings int
	l                  *zap.Logger
}

// Option is a functor to build a catalog with some options
type Option func(*Catalog)

// Client sets the HTTP client used to retrieve catalog documents.
// Pass an authenticated session client when the endpoint is protected.
func Client(client *http.Client) Option {
	return func(c *Catalog) {
		c.client = client
	}
}

// ConcurrentListings tunes the level of concurrency when listing a date range
func ConcurrentListings(concurrentListings int) Option {
	return func(c *Catalog) {
		if concurrentListings > 0 {
			c.concurrentListings = concurrentListings
		}
	}
}

// Logger injects a logging facility into catalog operations
func Logger(l *zap.Logger) Option {
	return func(c *Catalog) {
		c.l = l
	}
}

// New builds a catalog for one product of one mission
func New(mission model.MissionDescriptor, product model.ProductDescriptor, version int, opts ...Option) *Catalog {
	c := &Catalog{
		mission:            mission,
		product:            product,
		version:            version,
		client:             http.DefaultClient,
		concurrentListings: defaultConcurrentListings,
		l:                  dlogger.MustGetLogger(dlogger.LogLevelNone),
	}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

// get retrieves one catalog document
func (c *Catalog) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, status.ErrNotFound.Wrap(fmt.Errorf("catalog %q", url))
	case resp.StatusCode != http.StatusOK:
		return nil, status.ErrCatalog.Wrap(fmt.Errorf("catalog %q: unexpected status %d", url, resp.StatusCode))
	}
	return ioutil.ReadAll(resp.Body)
}

// ListDay returns the data URLs of the granules published for one UTC day,
// in archive (chronological) order.
func (c *Catalog) ListDay(ctx context.Context, day time.Time) ([]string, error) {
	archivePath := model.GetArchivePathToDayCatalog(c.mission, c.product, c.version, day.Year(), day.YearDay())
	raw, err := c.get(ctx, model.GetURLToArchivePath(c.mission, archivePath))
	if err != nil {
		return nil, err
	}
	ids, err := parseCatalog(raw)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(ids))
	for _, id := range ids {
		urls = append(urls, c.mission.BaseURL+id)
	}
	sort.Strings(urls)
	c.l.Debug("listed day catalog",
		zap.String("path", archivePath),
		zap.Int("granules", len(urls)),
	)
	return urls, nil
}

type listDayChans struct {
	listings           chan<- dayListing
	error              chan<- error
	done               <-chan struct{}
	concurrencyControl <-chan struct{}
}

type dayListing struct {
	index int
	urls  []string
}

func (c *Catalog) listOneDay(ctx context.Context, day time.Time, index int, chans listDayChans) {
	defer func() {
		<-chans.concurrencyControl
	}()
	urls, err := c.ListDay(ctx, day)
	if err != nil {
		select {
		case chans.error <- err:
		case <-chans.done:
		}
		return
	}
	select {
	case chans.listings <- dayListing{index: index, urls: urls}:
	case <-chans.done:
	}
}

// ListRange returns the data URLs of all granules published over an inclusive
// date range, in chronological order.
//
// Per-day catalogs are retrieved concurrently, up to the configured level.
func (c *Catalog) ListRange(ctx context.Context, from, to time.Time) ([]string, error) {
	days := model.DateRange(from, to)
	if len(days) == 0 {
		return nil, fmt.Errorf("invalid date range: %v is before %v",
			to.Format(model.DateFormat), from.Format(model.DateFormat))
	}

	listingsC := make(chan dayListing)
	errorC := make(chan error)
	doneC := make(chan struct{})
	defer close(doneC)

	go func() {
		concurrencyControl := make(chan struct{}, c.concurrentListings)
		for i, day := range days {
			concurrencyControl <- struct{}{}
			go c.listOneDay(ctx, day, i, listDayChans{
				listings:           listingsC,
				error:              errorC,
				done:               doneC,
				concurrencyControl: concurrencyControl,
			})
		}
	}()

	perDay := make([][]string, len(days))
	for received := 0; received < len(days); received++ {
		select {
		case listing := <-listingsC:
			perDay[listing.index] = listing.urls
		case err := <-errorC:
			c.l.Error("list range failed", zap.Error(err))
			return nil, err
		case <-ctx.Done():
			return nil, status.ErrInterrupted.Wrap(ctx.Err())
		}
	}

	var urls []string
	for _, dayURLs := range perDay {
		urls = append(urls, dayURLs...)
	}
	return urls, nil
}
