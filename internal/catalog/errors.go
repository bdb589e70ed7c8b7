package catalog

import "errors"

var (
	// ErrDataUnavailable indicates one of the term's data files could not be
	// fetched. Callers treat the term as having an empty catalog.
	ErrDataUnavailable = errors.New("catalog data unavailable")

	// ErrInvalidTerm indicates a term that cannot name a data directory.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrTimeout indicates the load exceeded the configured timeout.
	ErrTimeout = errors.New("catalog load timed out")

	// ErrInvalidData indicates a data file was fetched but is not the
	// expected JSON array.
	ErrInvalidData = errors.New("invalid catalog data")
)

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrInvalidData):
		return "INVALID_DATA"
	case errors.Is(err, ErrDataUnavailable):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
