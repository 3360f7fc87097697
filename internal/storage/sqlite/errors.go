package sqlite

import "errors"

// ErrNotFound indicates that a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")
