// Package putemg implements the dataset-specific logic of
// putemg-downloader: manifest parsing, filter resolution, and artifact
// expansion.
//
// # Manifest
//
// The dataset publishes a flat manifest (records.txt) with one
// canonical record name per line. ParseManifest turns it into typed
// records and the set of observed participant IDs, failing fast on the
// first malformed line:
//
//	manifest, err := putemg.ParseManifest(text)
//
// # Filter resolution
//
// Resolve validates a Query (experiment types, media types, optional
// participant IDs) against the manifest and returns the matched
// records in a canonical order:
//
//	records, err := putemg.Resolve(manifest, putemg.Query{
//	    ExperimentTypes: []string{"emg_gestures"},
//	    MediaTypes:      []string{"data-csv", "video-1080p"},
//	    IDs:             []string{"03", "07"},
//	})
//
// Every validation failure surfaces as a typed error
// (InvalidExperimentTypeError, InvalidMediaTypeError, InvalidIDError,
// ErrMissingArguments) before any fetching can begin.
//
// # Artifacts
//
// ExpandArtifacts maps a matched record and the selected media types to
// the concrete files to download, applying the per-type directory and
// extension mapping and the depth/force exclusion.
package putemg
