package models

import "errors"

// ErrNotFound is returned by the db layer when a referenced record does
// not exist. Handlers translate it into the rendered 404 page.
var ErrNotFound = errors.New("record not found")
