package model

import "fmt"

// MalformedRecordError reports a manifest line that does not match the
// record name grammar.
//
// The manifest is trusted to be internally consistent, so a single
// malformed line is fatal to the whole resolution rather than being
// silently dropped.
type MalformedRecordError struct {
	// Name is the offending manifest line.
	Name string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record name %q", e.Name)
}
