package api

import "github.com/google/uuid"

// requestIDHeader carries the client-generated correlation ID. The server
// echoes it back on responses it has seen.
const requestIDHeader = "X-Request-ID"

// newRequestID returns a fresh correlation ID for one logical call. The same
// ID is reused across every retry of that call so server logs line up.
func newRequestID() string {
	return uuid.New().String()
}
