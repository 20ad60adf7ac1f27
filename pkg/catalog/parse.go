// Copyright © 2018 One Concern

package catalog

import (
	"encoding/xml"
	"strings"

	"github.com/oneconcern/nasadap/pkg/catalog/status"
)

// document maps the subset of a THREDDS InvCatalog we consume: the top-level
// dataset's children (granule entries with an ID attribute) and catalog
// references (sub-directory listings).
type document struct {
	XMLName xml.Name     `xml:"catalog"`
	Dataset innerDataset `xml:"dataset"`
	Refs    []catalogRef `xml:"catalogRef"`
}

type innerDataset struct {
	Name     string       `xml:"name,attr"`
	Children []docDataset `xml:"dataset"`
	Refs     []catalogRef `xml:"catalogRef"`
}

type docDataset struct {
	Name string `xml:"name,attr"`
	ID   string `xml:"ID,attr"`
}

type catalogRef struct {
	Title string `xml:"title,attr"`
	Href  string `xml:"href,attr"`
}

// parseCatalog extracts the granule IDs of a day listing.
//
// Service endpoints advertise themselves as .xml datasets alongside the data
// files: those are skipped, as are entries with no ID.
func parseCatalog(raw []byte) ([]string, error) {
	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, status.ErrCatalog.Wrap(err)
	}
	ids := make([]string, 0, len(doc.Dataset.Children))
	for _, child := range doc.Dataset.Children {
		if child.ID == "" || strings.Contains(child.ID, ".xml") {
			continue
		}
		ids = append(ids, child.ID)
	}
	return ids, nil
}

// parseCatalogRefs extracts the sub-directory names of a directory listing
// (year or day-of-year levels of the archive tree).
func parseCatalogRefs(raw []byte) ([]string, error) {
	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, status.ErrCatalog.Wrap(err)
	}
	refs := doc.Dataset.Refs
	if len(refs) == 0 {
		refs = doc.Refs
	}
	titles := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Title == "" {
			continue
		}
		titles = append(titles, ref.Title)
	}
	return titles, nil
}
