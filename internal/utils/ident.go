package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque identifier for documents and sub-entities
func NewID() string {
	return uuid.NewString()
}

// NowISO returns the current UTC time in RFC 3339 format with a fixed-width
// nanosecond fraction. The fixed width keeps the string ordering identical
// to the time ordering, so callers may compare timestamps lexically.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}
