package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")

	// ErrProgramReference is returned when a create or update names a
	// program that does not exist (store foreign key violation).
	ErrProgramReference = errors.New("referenced program does not exist")

	// ErrFullNameRequired and ErrProgramRequired are returned for blank
	// values in fields that cannot be cleared.
	ErrFullNameRequired = errors.New("client full name must not be blank")
	ErrProgramRequired  = errors.New("client program id must not be blank")
)
