// Package common defines shared constants and sentinel errors used across
// the admin console layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Gateway-level errors.
	ErrNotFound    = errors.New("not found")
	ErrBadEnvelope = errors.New("unrecognized response envelope")

	// Controller-level errors.
	ErrActionInFlight   = errors.New("action already in flight for record")
	ErrControllerClosed = errors.New("controller closed")

	// Form errors.
	ErrDuplicateTag   = errors.New("duplicate tag")
	ErrEmptyTag       = errors.New("empty tag")
	ErrFileTooLarge   = errors.New("file exceeds size limit")
	ErrUnknownSlot    = errors.New("unknown attachment slot")
	ErrSubmitInFlight = errors.New("submit already in progress")

	// Session errors.
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")

	// Upload errors.
	ErrUploadFailed = errors.New("upload failed")
)
