// Package urs implements the NASA URS (Earthdata Login) authentication flow.
//
// GES DISC data endpoints answer unauthenticated requests with a redirect to
// urs.earthdata.nasa.gov. The session follows the redirect chain with a
// cookie jar and re-attaches Basic credentials, but only towards the URS
// host: credentials never travel to any other host.
package urs

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/oneconcern/nasadap/pkg/auth"
	"github.com/oneconcern/nasadap/pkg/auth/status"
	"github.com/oneconcern/nasadap/pkg/dlogger"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultHost is the production Earthdata Login host
	DefaultHost = "urs.earthdata.nasa.gov"

	defaultTimeout = 5 * time.Minute

	maxRedirects = 10
)

// Option alters the behavior of a session
type Option func(*Session)

// AuthHost overrides the identity provider host (used against test servers)
func AuthHost(host string) Option {
	return func(s *Session) {
		s.authHost = host
	}
}

// Timeout sets the per-request timeout of the session's client
func Timeout(d time.Duration) Option {
	return func(s *Session) {
		s.timeout = d
	}
}

// Logger injects a logging facility into the session
func Logger(l *zap.Logger) Option {
	return func(s *Session) {
		s.l = l
	}
}

// Session is an authenticated HTTP client against an Earthdata-protected
// OPeNDAP endpoint.
type Session struct {
	credential auth.Credential
	authHost   string
	timeout    time.Duration
	client     *http.Client
	l          *zap.Logger
}

// New builds a session for a credential
func New(credential auth.Credential, opts ...Option) (*Session, error) {
	if err := credential.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		credential: credential,
		authHost:   DefaultHost,
		timeout:    defaultTimeout,
		l:          dlogger.MustGetLogger(dlogger.LogLevelNone),
	}
	for _, apply := range opts {
		apply(s)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, status.ErrAuthService.Wrap(err)
	}
	s.client = &http.Client{
		Jar:     jar,
		Timeout: s.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			// the standard library drops Authorization on cross-host hops:
			// re-attach it, towards the identity provider only
			if req.URL.Host == s.authHost {
				req.SetBasicAuth(s.credential.Username, s.credential.Password)
			}
			return nil
		},
	}
	return s, nil
}

// Client exposes the session's HTTP client, for packages issuing their own
// requests (catalog listing, granule downloads).
func (s *Session) Client() *http.Client {
	return s.client
}

// Check probes a protected URL to verify the session authenticates.
//
// A full redirect round-trip through the identity provider is performed, so a
// successful check leaves the jar holding the URS session cookies and
// subsequent requests skip the login handshake.
func (s *Session) Check(ctx context.Context, checkURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checkURL, nil)
	if err != nil {
		return status.ErrAuthService.Wrap(err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return status.ErrAuthService.Wrap(err)
	}
	defer resp.Body.Close()

	s.l.Debug("session check", zap.String("url", checkURL), zap.Int("status", resp.StatusCode))
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return status.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return status.ErrForbidden
	case resp.StatusCode >= 400:
		return status.ErrAuthService.Wrap(fmt.Errorf("check URL %q: unexpected status %d", checkURL, resp.StatusCode))
	}
	return nil
}
