package errors

import "net/http"

// The discovery pipeline failure taxonomy. LocationNotFound is a client error:
// the input was understood but unresolvable.
var (
	ErrClientInput = New(
		"CLIENT_INPUT_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Could not resolve location, try a different wording",
		http.StatusBadRequest,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Upstream data source is unavailable, try again later",
		http.StatusInternalServerError,
	)

	ErrUpstreamMalformed = New(
		"UPSTREAM_MALFORMED",
		"Upstream data source returned an unreadable response",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
