package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// ErrMissingID is returned by update and delete calls given an empty id.
var ErrMissingID = errors.New("api: missing product id")
