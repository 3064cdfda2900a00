package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any StatusError carrying a 404 via errors.Is.
var ErrNotFound = errors.New("gateway: resource not found")

// StatusError is a non-2xx response. The message is surfaced as-is, never
// parsed further.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway: server returned %d", e.Status)
	}
	return fmt.Sprintf("gateway: server returned %d: %s", e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
