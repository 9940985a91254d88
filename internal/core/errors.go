package core

import "errors"

var (
	// ErrNotFound reports that no resolution strategy matched an identifier.
	// Distinct from a fetch failure: the collection was there, the record wasn't.
	ErrNotFound = errors.New("record not found")

	// ErrBadResponse reports a backend body that is neither a bare array nor
	// a {"data": [...]} envelope.
	ErrBadResponse = errors.New("unexpected response shape")

	// ErrUnauthorized reports a 401/403 from the backend's admin namespace.
	ErrUnauthorized = errors.New("unauthorized")
)
