package types

import "errors"

// Data errors returned by repository operations.
var (
	// ErrNotFound indicates that no row matched the requested ID or natural
	// key. It is an expected, recoverable outcome; callers must check for it
	// before dereferencing a result.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName indicates that a create operation's natural-key check
	// found an existing match. Natural keys compare case-insensitively with
	// leading/trailing whitespace trimmed.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidReference indicates that a referenced parent entity does not
	// exist. Creation fails before insert rather than attaching a dangling
	// reference.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidID indicates a non-positive entity ID.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidName indicates an empty or whitespace-only name field.
	ErrInvalidName = errors.New("invalid name")
)
