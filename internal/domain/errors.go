package domain

import "errors"

var (
	// ErrNotFound is returned when no candidate matches the given id.
	ErrNotFound = errors.New("candidate not found")

	// ErrDuplicatePhoneNumber is returned when the phone number is already registered,
	// whether caught by the precheck or by the unique constraint on insert.
	ErrDuplicatePhoneNumber = errors.New("phone number already registered")

	// ErrInvalidStatus is returned for a status outside active/contacted/archived.
	ErrInvalidStatus = errors.New("invalid status")
)
