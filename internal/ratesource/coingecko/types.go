package coingecko

import "fmt"

// StatusError is returned for any non-200 response so callers can classify it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("coingecko: unexpected status code %d: %s", e.StatusCode, e.Body)
}
