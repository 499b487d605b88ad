package common

import "time"

const (
	// RequestTimeout bounds every handler's work.
	RequestTimeout = 5 * time.Second
	// MaxInquiryRequestBody limits JSON request bodies for inquiry submissions.
	MaxInquiryRequestBody = 64 << 10
	// DefaultPageLimit applies when a listing request asks for a page without a limit.
	DefaultPageLimit = 12
	// MaxPageLimit caps the page size.
	MaxPageLimit = 100
	// DefaultNearbyRadiusMiles is the map search radius when none is given.
	DefaultNearbyRadiusMiles = 25.0
)
