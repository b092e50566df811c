package program

import "errors"

var (
	ErrProgramNotFound   = errors.New("program not found")
	ErrProgramHasClients = errors.New("program has enrolled clients")

	// ErrNameRequired is returned when a create or update carries a blank
	// program name.
	ErrNameRequired = errors.New("program name must not be blank")
)
