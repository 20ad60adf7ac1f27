// Copyright © 2018 One Concern

package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oneconcern/nasadap/pkg/catalog/status"
	"github.com/oneconcern/nasadap/pkg/errors"
	"github.com/oneconcern/nasadap/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dayCatalogTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<catalog xmlns="http://www.unidata.ucar.edu/namespaces/thredds/InvCatalog/v1.0">
  <service name="dap" serviceType="OPeNDAP" base="/opendap/"/>
  <dataset name="/opendap/GPM_L3/GPM_3IMERGHH.06/%d/%03d contents">
    <dataset name="catalog.xml" ID="/opendap/GPM_L3/GPM_3IMERGHH.06/%d/%03d/catalog.xml"/>
    <dataset name="granule-b" ID="/opendap/GPM_L3/GPM_3IMERGHH.06/%d/%03d/3B-HHR.MS.MRG.3IMERG.%s-S003000-E005959.0030.V06B.HDF5"/>
    <dataset name="granule-a" ID="/opendap/GPM_L3/GPM_3IMERGHH.06/%d/%03d/3B-HHR.MS.MRG.3IMERG.%s-S000000-E002959.0000.V06B.HDF5"/>
  </dataset>
</catalog>`

func dayCatalog(day time.Time) string {
	y, d := day.Year(), day.YearDay()
	stamp := day.Format("20060102")
	return fmt.Sprintf(dayCatalogTemplate, y, d, y, d, y, d, stamp, y, d, stamp)
}

func refsCatalog(names ...string) string {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<catalog xmlns="http://www.unidata.ucar.edu/namespaces/thredds/InvCatalog/v1.0"
         xmlns:xlink="http://www.w3.org/1999/xlink">
  <dataset name="listing">`
	for _, name := range names {
		doc += fmt.Sprintf(`
    <catalogRef xlink:title="%s" xlink:href="%s/catalog.xml" name=""/>`, name, name)
	}
	return doc + `
  </dataset>
</catalog>`
}

// testMission rebinds the gpm registry entry onto a test server
func testMission(t *testing.T, baseURL string) (model.MissionDescriptor, model.ProductDescriptor) {
	t.Helper()
	m, err := model.GetMission("gpm")
	require.NoError(t, err)
	p, err := m.GetProduct("3IMERGHH")
	require.NoError(t, err)
	m.BaseURL = baseURL
	return m, p
}

func TestListDay(t *testing.T) {
	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/opendap/GPM_L3/GPM_3IMERGHH.06/2020/001/catalog.xml", r.URL.Path)
		_, _ = w.Write([]byte(dayCatalog(day)))
	}))
	defer ts.Close()

	m, p := testMission(t, ts.URL)
	c := New(m, p, m.Version)

	urls, err := c.ListDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, urls, 2) // the .xml entry is skipped
	assert.Equal(t,
		ts.URL+"/opendap/GPM_L3/GPM_3IMERGHH.06/2020/001/3B-HHR.MS.MRG.3IMERG.20200101-S000000-E002959.0000.V06B.HDF5",
		urls[0])
	assert.Equal(t,
		ts.URL+"/opendap/GPM_L3/GPM_3IMERGHH.06/2020/001/3B-HHR.MS.MRG.3IMERG.20200101-S003000-E005959.0030.V06B.HDF5",
		urls[1])
}

func TestListDayNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	m, p := testMission(t, ts.URL)
	c := New(m, p, m.Version)

	_, err := c.ListDay(context.Background(), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestListRange(t *testing.T) {
	from := time.Date(2020, 2, 28, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var year, doy int
		_, err := fmt.Sscanf(r.URL.Path, "/opendap/GPM_L3/GPM_3IMERGHH.06/%d/%d/catalog.xml", &year, &doy)
		require.NoError(t, err)
		day := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
		_, _ = w.Write([]byte(dayCatalog(day)))
	}))
	defer ts.Close()

	m, p := testMission(t, ts.URL)
	c := New(m, p, m.Version, ConcurrentListings(2))

	urls, err := c.ListRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, urls, 6) // 3 days x 2 granules

	// chronological order across days regardless of retrieval order
	assert.Contains(t, urls[0], "20200228-S000000")
	assert.Contains(t, urls[2], "20200229-S000000")
	assert.Contains(t, urls[4], "20200301-S000000")
}

func TestListRangeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	m, p := testMission(t, ts.URL)
	c := New(m, p, m.Version)

	_, err := c.ListRange(context.Background(),
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	// inverted range
	_, err = c.ListRange(context.Background(),
		time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
}

func TestRange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/opendap/GPM_L3/GPM_3IMERGHH.06/catalog.xml":
			_, _ = w.Write([]byte(refsCatalog("doc", "2019", "2020")))
		case "/opendap/GPM_L3/GPM_3IMERGHH.06/2019/catalog.xml":
			_, _ = w.Write([]byte(refsCatalog("152", "153", "154")))
		case "/opendap/GPM_L3/GPM_3IMERGHH.06/2020/catalog.xml":
			_, _ = w.Write([]byte(refsCatalog("001", "002")))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	m, p := testMission(t, ts.URL)
	c := New(m, p, m.Version)

	from, to, err := c.Range(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), to)
}

func TestRangeEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(refsCatalog()))
	}))
	defer ts.Close()

	m, p := testMission(t, ts.URL)
	c := New(m, p, m.Version)

	_, _, err := c.Range(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrEmpty))
}
