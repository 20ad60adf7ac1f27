// Copyright © 2018 One Concern

package model

import (
	"fmt"
	"path"
	"strings"
)

// GetArchivePathToDay returns the archive directory holding one UTC day of a
// product, relative to the OPeNDAP root, e.g. GPM_L3/GPM_3IMERGHH.06/2020/001
func GetArchivePathToDay(g Granule) string {
	return getArchivePathToDay(g.Mission, g.Product, g.Version, g.Day.Year(), g.Day.YearDay())
}

func getArchivePathToDay(m MissionDescriptor, p ProductDescriptor, version int, year, dayOfYear int) string {
	return fmt.Sprintf("%s/%s_%s.%02d/%d/%03d",
		m.ProcessLevel, strings.ToUpper(m.Name), p.Name, version, year, dayOfYear)
}

// GetArchivePathToDayCatalog returns the archive path of the THREDDS catalog
// document enumerating one UTC day of a product
func GetArchivePathToDayCatalog(m MissionDescriptor, p ProductDescriptor, version int, year, dayOfYear int) string {
	return getArchivePathToDay(m, p, version, year, dayOfYear) + "/catalog.xml"
}

// GetArchivePathToProduct returns the archive directory of a product,
// relative to the OPeNDAP root, e.g. GPM_L3/GPM_3IMERGHH.06
func GetArchivePathToProduct(m MissionDescriptor, p ProductDescriptor, version int) string {
	return fmt.Sprintf("%s/%s_%s.%02d", m.ProcessLevel, strings.ToUpper(m.Name), p.Name, version)
}

// GetArchivePathToGranule returns the archive path of a granule file,
// relative to the OPeNDAP root
func GetArchivePathToGranule(g Granule) string {
	return GetArchivePathToDay(g) + "/" + g.FileName()
}

// GetURLToArchivePath renders the absolute OPeNDAP URL of an archive path
func GetURLToArchivePath(m MissionDescriptor, archivePath string) string {
	return m.BaseURL + "/opendap/" + archivePath
}

// GetCacheKeyForURL maps a granule URL to its local cache key: the
// server-relative path with the archive extension replaced by .nc4.
//
// Both Hyrax and classic OPeNDAP URL layouts are recognized.
func GetCacheKeyForURL(url string) (string, error) {
	var rel string
	switch {
	case strings.Contains(url, "/hyrax/"):
		rel = url[strings.Index(url, "/hyrax/")+len("/hyrax/"):]
	case strings.Contains(url, "/opendap/"):
		rel = url[strings.Index(url, "/opendap/")+len("/opendap/"):]
	default:
		return "", fmt.Errorf("URL %q is not an OPeNDAP data URL", url)
	}
	if rel == "" {
		return "", fmt.Errorf("URL %q has an empty archive path", url)
	}
	ext := path.Ext(rel)
	return strings.TrimSuffix(rel, ext) + ".nc4", nil
}

// GetCacheKeyToGranule returns the local cache key of a granule
func GetCacheKeyToGranule(g Granule) string {
	archivePath := GetArchivePathToGranule(g)
	ext := path.Ext(archivePath)
	return strings.TrimSuffix(archivePath, ext) + ".nc4"
}
