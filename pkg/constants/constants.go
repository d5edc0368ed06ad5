package constants

import (
	"errors"
	"time"
)

// Errors
var (
	ErrIDInUse       = errors.New("subscription id already in use")
	ErrNoEndpoint    = errors.New("endpoint not set")
	ErrClosed        = errors.New("connection closed")
	ErrInvalidRecord = errors.New("invalid store record")
)

const (
	// RequestIDLength is the length of generated RPC request IDs.
	RequestIDLength = 16

	// DefaultTimeout bounds every RPC round trip unless the caller's
	// context is stricter.
	DefaultTimeout = 30 * time.Second

	// CloseMessageCode is the WebSocket close code sent on shutdown.
	CloseMessageCode = 1000
)

// AccessDeniedMessage is the fixed view-level error surfaced when a
// collection subscription is rejected by the store.
const AccessDeniedMessage = "Access denied. Please check the store security rules."
