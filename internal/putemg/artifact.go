package putemg

import (
	"path/filepath"

	"github.com/biolab-put/putemg-downloader/internal/model"
)

// Artifact is one concrete downloadable file derived from a record and
// a media type. Artifacts are ephemeral: produced per matched record,
// consumed by the fetch step, never persisted.
type Artifact struct {
	MediaType MediaType

	// RemotePath is the path suffix appended to the share base URL,
	// e.g. "Data-CSV&files=emg_gestures-03-....zip".
	RemotePath string

	// LocalPath is the target file path relative to the download
	// directory, e.g. "Data-CSV/emg_gestures-03-....zip".
	LocalPath string
}

// ExpandArtifacts lists the artifacts to fetch for one record, one per
// selected media type that applies to it. Media types that do not
// apply (depth for force experiments) are skipped silently: depth is
// simply not published for those records, which is not an error.
func ExpandArtifacts(r model.Record, mediaTypes []MediaType) []Artifact {
	name := r.Name()

	var artifacts []Artifact
	for _, mt := range mediaTypes {
		if !mt.AppliesTo(r) {
			continue
		}

		file := name + mt.Extension()
		artifacts = append(artifacts, Artifact{
			MediaType:  mt,
			RemotePath: mt.Dir() + "&files=" + file,
			LocalPath:  filepath.Join(mt.Dir(), file),
		})
	}

	return artifacts
}
