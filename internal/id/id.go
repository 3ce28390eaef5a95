// Package id generates opaque transaction identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh unique identifier. IDs are opaque: callers must not
// parse them, only compare for equality.
func New() string {
	return uuid.NewString()
}
