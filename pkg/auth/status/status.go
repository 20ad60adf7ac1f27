// Package status exports errors produced by the auth packages.
package status

import (
	"github.com/oneconcern/nasadap/pkg/errors"
)

var (
	// ErrAuthService indicates an error while establishing a session with the identity provider
	ErrAuthService = errors.New("cannot establish session with identity provider")

	// ErrUnauthorized indicates that the identity provider rejected the credentials
	ErrUnauthorized = errors.New("unauthorized: Earthdata rejected the credentials")

	// ErrForbidden indicates that the authenticated user may not access the resource
	ErrForbidden = errors.New("forbidden: the Earthdata account lacks access to the archive")
)
