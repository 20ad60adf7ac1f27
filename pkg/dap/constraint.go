// Copyright © 2018 One Concern

package dap

import (
	"fmt"
	"strings"
)

// Constraint renders a DAP2 constraint expression selecting the given
// dataset variables over a hyperslab, including the leading '?'.
//
// IMERG arrays are laid out (time, lon, lat): a single time step is always
// selected, then the lon and lat index ranges. The coordinate arrays and
// the time axis are appended so the response remains a self-described grid.
func Constraint(datasets []string, hs Hyperslab) string {
	cells := fmt.Sprintf("[0:1:0][%d:1:%d][%d:1:%d]", hs.MinLon, hs.MaxLon, hs.MinLat, hs.MaxLat)

	var b strings.Builder
	b.WriteByte('?')
	for _, ds := range datasets {
		b.WriteString(ds)
		b.WriteString(cells)
		b.WriteByte(',')
	}
	fmt.Fprintf(&b, "lat[%d:1:%d],", hs.MinLat, hs.MaxLat)
	fmt.Fprintf(&b, "lon[%d:1:%d],", hs.MinLon, hs.MaxLon)
	b.WriteString("time[0:1:0]")
	return b.String()
}
