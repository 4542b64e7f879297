package putemg

import (
	"sort"
	"strings"

	"github.com/biolab-put/putemg-downloader/internal/model"
)

// ManifestFile is the name of the remote record listing.
const ManifestFile = "records.txt"

// Manifest is the parsed remote record listing: every record the
// dataset publishes, plus the set of participant IDs observed in it.
type Manifest struct {
	// Records holds every manifest entry in original manifest order.
	// Duplicate lines yield duplicate Records; the manifest is treated
	// as a sequence, not a set.
	Records []model.Record

	ids map[string]struct{}
}

// ParseManifest parses the newline-delimited record listing.
//
// The manifest is trusted to be well formed end to end: the first line
// that fails the record grammar aborts parsing with
// *model.MalformedRecordError. Blank lines are ignored.
func ParseManifest(text string) (*Manifest, error) {
	m := &Manifest{ids: make(map[string]struct{})}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rec, err := model.ParseRecord(line)
		if err != nil {
			return nil, err
		}

		m.Records = append(m.Records, rec)
		m.ids[rec.ParticipantID] = struct{}{}
	}

	return m, nil
}

// HasID reports whether any manifest record carries the participant ID.
func (m *Manifest) HasID(id string) bool {
	_, ok := m.ids[id]
	return ok
}

// IDs returns the sorted set of participant IDs observed in the manifest.
func (m *Manifest) IDs() []string {
	ids := make([]string, 0, len(m.ids))
	for id := range m.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
