// Copyright © 2018 One Concern

package storage

import (
	"context"
	"io"
)

const (
	// OverWrite indicates that a Put may replace an existing object
	OverWrite = false

	// NoOverWrite indicates that a Put must fail when the object already exists
	NoOverWrite = true
)

// Store implementations know how to write entries to a K/V store.
//
// Typically this is something file system-like. The primary implementation
// here is the local cache directory holding downloaded granules.
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader, bool) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	KeysPrefix(context.Context, string) ([]string, error)
	Clear(context.Context) error
}

// Sizer is implemented by stores which can report the size of an object
// without retrieving its content.
type Sizer interface {
	Size(context.Context, string) (int64, error)
}

// PipeIO copies a reader to a writer with an intermediate buffer
func PipeIO(writer io.Writer, reader io.Reader) (int64, error) {
	return io.CopyBuffer(writer, reader, make([]byte, 32*1024))
}
