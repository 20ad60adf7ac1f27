// Copyright © 2018 One Concern

// Package dap builds OPeNDAP (DAP2) constraint expressions for subsetting
// gridded IMERG granules on the server side.
//
// The IMERG grid is fixed: a global 0.1° regular grid with cell centers at
// -179.95..179.95 longitude and -89.95..89.95 latitude. Bounding boxes in
// decimal degrees are resolved to the nearest cell indices before being
// rendered as hyperslabs.
package dap

import (
	"fmt"
	"math"
)

const (
	// LonCells is the number of longitude cells of the IMERG grid
	LonCells = 3600

	// LatCells is the number of latitude cells of the IMERG grid
	LatCells = 1800

	cellSize  = 0.1
	lonOrigin = -179.95
	latOrigin = -89.95
)

// Bounds is a geographical bounding box in WGS84 decimal degrees.
//
// The zero value selects the full grid.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Box builds an explicit bounding box
func Box(minLat, maxLat, minLon, maxLon float64) Bounds {
	return Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
}

// IsFull tells whether the bounds select the entire grid
func (b Bounds) IsFull() bool {
	return b == Bounds{}
}

// Hyperslab is a resolved index range on the grid axes
type Hyperslab struct {
	MinLon, MaxLon int
	MinLat, MaxLat int
}

// lonIndex resolves a longitude to its nearest grid cell index
func lonIndex(lon float64) int {
	return clamp(int(math.Round((lon-lonOrigin)/cellSize)), 0, LonCells-1)
}

// latIndex resolves a latitude to its nearest grid cell index
func latIndex(lat float64) int {
	return clamp(int(math.Round((lat-latOrigin)/cellSize)), 0, LatCells-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Resolve maps the bounds to grid cell indices.
//
// Degenerate boxes (min not strictly below max once resolved) are rejected.
func (b Bounds) Resolve() (Hyperslab, error) {
	if b.IsFull() {
		return Hyperslab{MinLon: 0, MaxLon: LonCells - 1, MinLat: 0, MaxLat: LatCells - 1}, nil
	}
	hs := Hyperslab{
		MinLon: lonIndex(b.MinLon),
		MaxLon: lonIndex(b.MaxLon),
		MinLat: latIndex(b.MinLat),
		MaxLat: latIndex(b.MaxLat),
	}
	if hs.MinLon >= hs.MaxLon {
		return Hyperslab{}, fmt.Errorf("min_lon must be smaller than max_lon")
	}
	if hs.MinLat >= hs.MaxLat {
		return Hyperslab{}, fmt.Errorf("min_lat must be smaller than max_lat")
	}
	return hs, nil
}
