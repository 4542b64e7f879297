package model

import (
	"fmt"
	"regexp"
)

// recordPattern is the canonical record name grammar:
//
//	<type>-<2-digit id>-<trajectory>-<YYYY-MM-DD>-<HH-MM-SS-mmm>
//
// Type and trajectory are unconstrained word characters. The pattern is
// anchored on both ends so that a name with trailing garbage is rejected.
var recordPattern = regexp.MustCompile(
	`^(?P<type>\w*)-(?P<id>\d{2})-(?P<trajectory>\w*)-` +
		`(?P<date>\d{4}-\d{2}-\d{2})-(?P<time>\d{2}-\d{2}-\d{2}-\d{3})$`)

// Record represents one experiment session listed in the dataset manifest.
//
// A Record is an immutable value parsed from a single manifest line.
// Its identity is the full 5-tuple; the manifest may list the same name
// more than once, in which case parsing yields equal Records.
//
// Example:
//
//	rec, err := model.ParseRecord("emg_gestures-03-sequential-2018-04-06-10-20-53-131")
//	// rec.ExperimentType = "emg_gestures"
//	// rec.ParticipantID  = "03"
//	// rec.Name()         = the original line, unchanged
type Record struct {
	// ExperimentType is the experiment category, e.g. "emg_gestures".
	// The parser accepts any word characters here; unknown values are
	// filtered out later when matched against the requested types.
	ExperimentType string

	// ParticipantID is the two-digit participant identifier.
	ParticipantID string

	// Trajectory is the gesture/force trajectory name.
	Trajectory string

	// Date is the session date in YYYY-MM-DD form.
	Date string

	// Time is the session time in HH-MM-SS-mmm form.
	Time string
}

// ParseRecord parses one manifest line into a Record.
//
// The only error path is a grammar mismatch, reported as
// *MalformedRecordError. No semantic validation happens here: a line
// with an unrecognized experiment type still parses and is excluded
// later by filter resolution.
func ParseRecord(name string) (Record, error) {
	m := recordPattern.FindStringSubmatch(name)
	if m == nil {
		return Record{}, &MalformedRecordError{Name: name}
	}

	return Record{
		ExperimentType: m[1],
		ParticipantID:  m[2],
		Trajectory:     m[3],
		Date:           m[4],
		Time:           m[5],
	}, nil
}

// Name returns the canonical record name, the exact inverse of ParseRecord:
// for every well-formed name, ParseRecord(name).Name() == name.
//
// The canonical name is also the remote file basename for every media type.
func (r Record) Name() string {
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		r.ExperimentType, r.ParticipantID, r.Trajectory, r.Date, r.Time)
}
