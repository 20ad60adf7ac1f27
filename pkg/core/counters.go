// Copyright © 2018 One Concern

package core

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Counters accumulate download telemetry across the runs of a Sync.
//
// They are updated by concurrent download workers.
type Counters struct {
	Downloaded atomic.Int64
	Skipped    atomic.Int64
	Failed     atomic.Int64
	Bytes      atomic.Int64
}

// ZapFields renders the counters as structured log fields
func (c *Counters) ZapFields() []zap.Field {
	return []zap.Field{
		zap.Int64("downloaded", c.Downloaded.Load()),
		zap.Int64("skipped", c.Skipped.Load()),
		zap.Int64("failed", c.Failed.Load()),
		zap.Int64("bytes", c.Bytes.Load()),
	}
}

// Counters exposes the cumulative telemetry of this sync
func (s *Sync) Counters() *Counters {
	return &s.counters
}
