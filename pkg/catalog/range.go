// Copyright © 2018 One Concern

package catalog

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/oneconcern/nasadap/pkg/catalog/status"
	"github.com/oneconcern/nasadap/pkg/model"
	"go.uber.org/zap"
)

// Range discovers the first and last days with published data for the
// product, by walking the year and day-of-year levels of the archive tree
// from both ends.
func (c *Catalog) Range(ctx context.Context) (from time.Time, to time.Time, err error) {
	years, err := c.listNumericRefs(ctx, model.GetArchivePathToProduct(c.mission, c.product, c.version)+"/catalog.xml")
	if err != nil {
		return from, to, err
	}
	if len(years) == 0 {
		return from, to, status.ErrEmpty
	}

	firstYear, lastYear := years[0], years[len(years)-1]
	firstDoy, err := c.boundaryDay(ctx, firstYear, false)
	if err != nil {
		return from, to, err
	}
	lastDoy, err := c.boundaryDay(ctx, lastYear, true)
	if err != nil {
		return from, to, err
	}

	from = dayOfYear(firstYear, firstDoy)
	to = dayOfYear(lastYear, lastDoy)
	c.l.Debug("resolved catalog range",
		zap.Time("from", from),
		zap.Time("to", to),
	)
	return from, to, nil
}

// boundaryDay returns the smallest (or largest) day-of-year listed for a year
func (c *Catalog) boundaryDay(ctx context.Context, year int, last bool) (int, error) {
	yearPath := model.GetArchivePathToProduct(c.mission, c.product, c.version) + "/" + strconv.Itoa(year) + "/catalog.xml"
	days, err := c.listNumericRefs(ctx, yearPath)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, status.ErrEmpty
	}
	if last {
		return days[len(days)-1], nil
	}
	return days[0], nil
}

// listNumericRefs retrieves a directory catalog and returns its numeric
// sub-directory names, sorted ascending. Non-numeric entries (docs, contents
// folders) are ignored.
func (c *Catalog) listNumericRefs(ctx context.Context, archivePath string) ([]int, error) {
	raw, err := c.get(ctx, model.GetURLToArchivePath(c.mission, archivePath))
	if err != nil {
		return nil, err
	}
	titles, err := parseCatalogRefs(raw)
	if err != nil {
		return nil, err
	}
	values := make([]int, 0, len(titles))
	for _, title := range titles {
		v, err := strconv.Atoi(title)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	sort.Ints(values)
	return values, nil
}

func dayOfYear(year, doy int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
}
