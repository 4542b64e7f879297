package putemg

import (
	"errors"
	"fmt"
)

// ErrMissingArguments is returned when the query names no experiment
// types or no media types. It corresponds to the usage case: nothing
// can be selected, so resolution short-circuits before any network I/O.
var ErrMissingArguments = errors.New("at least one experiment type and one media type are required")

// InvalidExperimentTypeError reports a requested experiment type that
// is not one of the supported set.
type InvalidExperimentTypeError struct {
	Value string
}

func (e *InvalidExperimentTypeError) Error() string {
	return fmt.Sprintf("invalid experiment type %q (supported: %s, %s)",
		e.Value, ExperimentGestures, ExperimentForce)
}

// InvalidMediaTypeError reports a requested media type that is not one
// of the supported set.
type InvalidMediaTypeError struct {
	Value string
}

func (e *InvalidMediaTypeError) Error() string {
	return fmt.Sprintf("invalid media type %q", e.Value)
}

// InvalidIDError reports a requested participant ID that is either not
// two digits or not present in the manifest.
type InvalidIDError struct {
	Value string

	// Unknown is true when the ID is well formed but no manifest
	// record carries it.
	Unknown bool
}

func (e *InvalidIDError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("participant ID %q not available", e.Value)
	}
	return fmt.Sprintf("invalid participant ID %q (expected two digits)", e.Value)
}
