// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the full-text service has no record for a paper.
var ErrNotFound = errors.New("paper not found")

// FetchError reports any other failure to fetch a paper: a non-success
// HTTP status, a transport error, or an undecodable body.
type FetchError struct {
	// StatusCode is the HTTP status returned, or 0 when no usable response
	// was read.
	StatusCode int

	// Err is the underlying error when StatusCode is 0.
	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("paper fetch status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("paper fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
