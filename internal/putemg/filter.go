package putemg

import (
	"regexp"
	"sort"

	"github.com/biolab-put/putemg-downloader/internal/model"
)

// Query is the caller-supplied record selection: which experiment
// types and media types to fetch, optionally narrowed to a set of
// participant IDs. An empty IDs slice means every participant observed
// in the manifest.
type Query struct {
	ExperimentTypes []string
	MediaTypes      []string
	IDs             []string
}

var idPattern = regexp.MustCompile(`^[0-9]{2}$`)

// ParseMediaTypes validates the requested media type names and returns
// the corresponding MediaType values, deduplicated, in canonical order.
//
// Validation is exact-set membership against the five supported types;
// any other value fails with *InvalidMediaTypeError.
func ParseMediaTypes(values []string) ([]MediaType, error) {
	requested := make(map[MediaType]struct{}, len(values))
	for _, v := range values {
		known := false
		for _, mt := range AllMediaTypes {
			if MediaType(v) == mt {
				known = true
				break
			}
		}
		if !known {
			return nil, &InvalidMediaTypeError{Value: v}
		}
		requested[MediaType(v)] = struct{}{}
	}

	var selected []MediaType
	for _, mt := range AllMediaTypes {
		if _, ok := requested[mt]; ok {
			selected = append(selected, mt)
		}
	}
	return selected, nil
}

// Resolve validates the query against the manifest and returns the
// matched records.
//
// Validation happens in full before any record is selected:
//
//   - an empty experiment-type or media-type filter fails with
//     ErrMissingArguments;
//   - an unsupported experiment type fails with
//     *InvalidExperimentTypeError naming the offending value;
//   - an unsupported media type fails with *InvalidMediaTypeError;
//   - a requested ID that is not two digits, or that no manifest
//     record carries, fails with *InvalidIDError.
//
// The effective ID set is the intersection of observed and requested
// IDs when IDs were requested, otherwise every observed ID. A record
// matches when its experiment type is requested and its participant ID
// is in the effective set.
//
// Matches are returned sorted by (participant ID, date, time) so that
// the result order is canonical regardless of manifest order.
// Duplicate manifest entries are preserved.
func Resolve(m *Manifest, q Query) ([]model.Record, error) {
	if len(q.ExperimentTypes) == 0 || len(q.MediaTypes) == 0 {
		return nil, ErrMissingArguments
	}

	types := make(map[string]struct{}, len(q.ExperimentTypes))
	for _, e := range q.ExperimentTypes {
		if e != ExperimentGestures && e != ExperimentForce {
			return nil, &InvalidExperimentTypeError{Value: e}
		}
		types[e] = struct{}{}
	}

	if _, err := ParseMediaTypes(q.MediaTypes); err != nil {
		return nil, err
	}

	effective := make(map[string]struct{})
	if len(q.IDs) > 0 {
		for _, id := range q.IDs {
			if !idPattern.MatchString(id) {
				return nil, &InvalidIDError{Value: id}
			}
			if !m.HasID(id) {
				return nil, &InvalidIDError{Value: id, Unknown: true}
			}
			effective[id] = struct{}{}
		}
	} else {
		for _, id := range m.IDs() {
			effective[id] = struct{}{}
		}
	}

	var matched []model.Record
	for _, r := range m.Records {
		if _, ok := types[r.ExperimentType]; !ok {
			continue
		}
		if _, ok := effective[r.ParticipantID]; !ok {
			continue
		}
		matched = append(matched, r)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Time < b.Time
	})

	return matched, nil
}
