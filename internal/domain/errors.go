package domain

import "errors"

var (
	// ErrNotFound entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput caller supplied data that must be rejected before any
	// resolution or persistence is attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLookupUnavailable the external requirement lookup could not be
	// reached or returned a malformed payload. Resolution treats this as an
	// empty set plus a warning, never as a fallback to another policy.
	ErrLookupUnavailable = errors.New("external lookup unavailable")

	// ErrResyncFailed the transactional requirement resync did not commit;
	// the previous record set is still in place and the caller may retry.
	ErrResyncFailed = errors.New("requirement resync failed")
)
