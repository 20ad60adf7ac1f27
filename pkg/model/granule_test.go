// Copyright © 2018 One Concern

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMission(t *testing.T) MissionDescriptor {
	t.Helper()
	m, err := GetMission("gpm")
	require.NoError(t, err)
	return m
}

func mustProduct(t *testing.T, name string) (MissionDescriptor, ProductDescriptor) {
	t.Helper()
	m := mustMission(t)
	p, err := m.GetProduct(name)
	require.NoError(t, err)
	return m, p
}

func TestGranuleFileName(t *testing.T) {
	m, p := mustProduct(t, "3IMERGHH")
	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, toPin := range []struct {
		slot     int
		expected string
	}{
		{0, "3B-HHR.MS.MRG.3IMERG.20200101-S000000-E002959.0000.V06B.HDF5"},
		{1, "3B-HHR.MS.MRG.3IMERG.20200101-S003000-E005959.0030.V06B.HDF5"},
		{47, "3B-HHR.MS.MRG.3IMERG.20200101-S233000-E235959.1410.V06B.HDF5"},
	} {
		testcase := toPin
		g, err := NewGranule(m, p, m.Version, day, testcase.slot)
		require.NoError(t, err)
		assert.Equal(t, testcase.expected, g.FileName())
	}
}

func TestGranuleFileNameEarlyRun(t *testing.T) {
	m, p := mustProduct(t, "3IMERGHHE")
	day := time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)

	g, err := NewGranule(m, p, m.Version, day, 24)
	require.NoError(t, err)
	assert.Equal(t, "3B-HHR-E.MS.MRG.3IMERG.20191231-S120000-E122959.0720.V06B.HDF5", g.FileName())
}

func TestGranuleSlotBounds(t *testing.T) {
	m, p := mustProduct(t, "3IMERGHH")
	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewGranule(m, p, m.Version, day, -1)
	require.Error(t, err)
	_, err = NewGranule(m, p, m.Version, day, SlotsPerDay)
	require.Error(t, err)
}

func TestGranuleDayNormalized(t *testing.T) {
	m, p := mustProduct(t, "3IMERGHH")
	// a timestamp in the middle of the day, in a non-UTC zone
	loc := time.FixedZone("UTC+5", 5*3600)
	g, err := NewGranule(m, p, m.Version, time.Date(2020, 6, 15, 13, 45, 12, 0, loc), 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), g.Day)
}

func TestDateRange(t *testing.T) {
	from := time.Date(2020, 2, 27, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	days := DateRange(from, to)
	require.Len(t, days, 4) // leap year
	assert.Equal(t, from, days[0])
	assert.Equal(t, to, days[3])

	assert.Len(t, DateRange(from, from), 1)
	assert.Empty(t, DateRange(to, from))
}

func TestMissionRegistry(t *testing.T) {
	_, err := GetMission("trmm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpm")

	m := mustMission(t)
	_, err = m.GetProduct("3IMERGM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3IMERGHH")

	assert.Equal(t, []string{"3IMERGHHE", "3IMERGHHL", "3IMERGHH"}, m.ProductNames())
}

func TestSelectDatasets(t *testing.T) {
	_, p := mustProduct(t, "3IMERGHH")

	all, err := p.SelectDatasets(nil)
	require.NoError(t, err)
	assert.Equal(t, p.Datasets, all)

	// order of request does not matter, registry order prevails
	sel, err := p.SelectDatasets([]string{"IRprecipitation", "precipitationCal"})
	require.NoError(t, err)
	assert.Equal(t, []string{"precipitationCal", "IRprecipitation"}, sel)

	_, err = p.SelectDatasets([]string{"notAVariable"})
	require.Error(t, err)
}
