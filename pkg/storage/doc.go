// Copyright © 2018 One Concern

// Package storage provides an interface to handle cache storage objects.
//
// This package currently supports a local file system backend, used as the
// cache directory for downloaded granules.
package storage
