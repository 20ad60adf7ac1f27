// Copyright © 2018 One Concern

package model

import (
	"fmt"
	"sort"
	"strings"
)

// MissionDescriptor describes a satellite mission served by a GES DISC
// OPeNDAP endpoint.
type MissionDescriptor struct {
	Name         string              `json:"name" yaml:"name"`
	BaseURL      string              `json:"baseURL" yaml:"baseURL"`
	ProcessLevel string              `json:"processLevel" yaml:"processLevel"`
	Version      int                 `json:"version" yaml:"version"`
	Products     []ProductDescriptor `json:"products" yaml:"products"`
}

// ProductDescriptor describes a data product of a mission.
//
// FilePrefix is the fixed leading part of granule file names
// (e.g. "3B-HHR.MS.MRG.3IMERG" for the final half-hourly IMERG run).
// Datasets enumerates the variables a granule of this product carries.
type ProductDescriptor struct {
	Name       string   `json:"name" yaml:"name"`
	FilePrefix string   `json:"filePrefix" yaml:"filePrefix"`
	Datasets   []string `json:"datasets" yaml:"datasets"`
}

// imergDatasets is the master list of the variables published in every
// half-hourly IMERG granule.
var imergDatasets = []string{
	"precipitationQualityIndex",
	"IRkalmanFilterWeight",
	"precipitationCal",
	"HQprecipitation",
	"probabilityLiquidPrecipitation",
	"randomError",
	"IRprecipitation",
}

// missions is the registry of supported missions and products.
var missions = []MissionDescriptor{
	{
		Name:         "gpm",
		BaseURL:      "https://gpm1.gesdisc.eosdis.nasa.gov:443",
		ProcessLevel: "GPM_L3",
		Version:      6,
		Products: []ProductDescriptor{
			{Name: "3IMERGHHE", FilePrefix: "3B-HHR-E.MS.MRG.3IMERG", Datasets: imergDatasets},
			{Name: "3IMERGHHL", FilePrefix: "3B-HHR-L.MS.MRG.3IMERG", Datasets: imergDatasets},
			{Name: "3IMERGHH", FilePrefix: "3B-HHR.MS.MRG.3IMERG", Datasets: imergDatasets},
		},
	},
}

// Missions returns the registered mission names, sorted.
func Missions() []string {
	names := make([]string, 0, len(missions))
	for _, m := range missions {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// GetMission returns the descriptor of a named mission
func GetMission(mission string) (MissionDescriptor, error) {
	for _, m := range missions {
		if m.Name == mission {
			return m, nil
		}
	}
	return MissionDescriptor{}, fmt.Errorf("mission should be one of: %s", strings.Join(Missions(), ", "))
}

// Products returns the product names of a mission, in registry order.
func (m MissionDescriptor) ProductNames() []string {
	names := make([]string, 0, len(m.Products))
	for _, p := range m.Products {
		names = append(names, p.Name)
	}
	return names
}

// GetProduct returns the descriptor of a named product of this mission
func (m MissionDescriptor) GetProduct(product string) (ProductDescriptor, error) {
	for _, p := range m.Products {
		if p.Name == product {
			return p, nil
		}
	}
	return ProductDescriptor{}, fmt.Errorf("product must be one of: %s", strings.Join(m.ProductNames(), ", "))
}

// HasDataset tells whether a dataset variable belongs to this product
func (p ProductDescriptor) HasDataset(name string) bool {
	for _, d := range p.Datasets {
		if d == name {
			return true
		}
	}
	return false
}

// SelectDatasets validates a dataset-variable selection against the product.
// An empty selection means the product's full master list.
func (p ProductDescriptor) SelectDatasets(names []string) ([]string, error) {
	if len(names) == 0 {
		selected := make([]string, len(p.Datasets))
		copy(selected, p.Datasets)
		return selected, nil
	}
	// preserve registry order regardless of the order given
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		if !p.HasDataset(n) {
			return nil, fmt.Errorf("dataset %q of product %s must be one of: %s",
				n, p.Name, strings.Join(p.Datasets, ", "))
		}
		requested[n] = true
	}
	selected := make([]string, 0, len(requested))
	for _, d := range p.Datasets {
		if requested[d] {
			selected = append(selected, d)
		}
	}
	return selected, nil
}
