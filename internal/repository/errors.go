package repository

import "errors"

// ErrNotFound is wrapped by repositories when a lookup has no result.
var ErrNotFound = errors.New("not found")
