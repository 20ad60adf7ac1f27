// Copyright © 2018 One Concern

package model

import (
	"fmt"
	"time"
)

const (
	// SlotsPerDay is the number of half-hourly granules published per UTC day
	SlotsPerDay = 48

	// slotDuration is the time covered by one granule
	slotDuration = 30 * time.Minute

	// DateFormat is the wire format for dates taken as CLI or config input
	DateFormat = "2006-01-02"
)

// Granule identifies a single archive file: one product at one half-hour
// slot of one UTC day.
type Granule struct {
	Mission MissionDescriptor
	Product ProductDescriptor
	Version int
	Day     time.Time
	Slot    int
}

// NewGranule builds a granule for a product, normalizing the day to UTC midnight
func NewGranule(mission MissionDescriptor, product ProductDescriptor, version int, day time.Time, slot int) (Granule, error) {
	if slot < 0 || slot >= SlotsPerDay {
		return Granule{}, fmt.Errorf("slot %d out of range [0,%d)", slot, SlotsPerDay)
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return Granule{
		Mission: mission,
		Product: product,
		Version: version,
		Day:     day,
		Slot:    slot,
	}, nil
}

// Start is the UTC time at which the granule's observation window opens
func (g Granule) Start() time.Time {
	return g.Day.Add(time.Duration(g.Slot) * slotDuration)
}

// End is the last second of the granule's observation window
func (g Granule) End() time.Time {
	return g.Start().Add(slotDuration - time.Second)
}

// MinutesOfDay is the granule's start offset in minutes since midnight,
// as encoded in IMERG file names (0000, 0030, ... 2330).
func (g Granule) MinutesOfDay() int {
	return g.Slot * 30
}

// FileName renders the granule's archive file name, e.g.
// 3B-HHR.MS.MRG.3IMERG.20200101-S003000-E005959.0030.V06B.HDF5
func (g Granule) FileName() string {
	return fmt.Sprintf("%s.%s-S%s-E%s.%04d.V%02dB.HDF5",
		g.Product.FilePrefix,
		g.Day.Format("20060102"),
		g.Start().Format("150405"),
		g.End().Format("150405"),
		g.MinutesOfDay(),
		g.Version,
	)
}

func (g Granule) String() string {
	return g.FileName()
}

// DateRange expands an inclusive [from, to] date interval into its UTC days
func DateRange(from, to time.Time) []time.Time {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return nil
	}
	days := make([]time.Time, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
