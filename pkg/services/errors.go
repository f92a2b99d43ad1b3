package services

import "errors"

var (
	// ErrUpstreamUnavailable marks any failed content fetch: network error,
	// timeout, non-2xx status, undecodable body or a missing data envelope.
	ErrUpstreamUnavailable = errors.New("content: upstream unavailable")

	// ErrArtistNotFound marks a successful fetch that matched no artist.
	// Distinct from ErrUpstreamUnavailable so callers can render a real
	// not-found state instead of degraded default copy.
	ErrArtistNotFound = errors.New("content: artist not found")
)
