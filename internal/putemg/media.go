package putemg

import "github.com/biolab-put/putemg-downloader/internal/model"

// Supported experiment types.
const (
	ExperimentGestures = "emg_gestures"
	ExperimentForce    = "emg_force"
)

// MediaType identifies one category of downloadable deliverable.
type MediaType string

// Supported media types.
const (
	MediaDataCSV   MediaType = "data-csv"
	MediaDataHDF5  MediaType = "data-hdf5"
	MediaDepth     MediaType = "depth"
	MediaVideo1080 MediaType = "video-1080p"
	MediaVideo576  MediaType = "video-576p"
)

// AllMediaTypes lists every supported media type in canonical order.
// Artifact expansion and validation both follow this order so that
// output is deterministic regardless of how the caller ordered its
// request.
var AllMediaTypes = []MediaType{
	MediaDataCSV,
	MediaDataHDF5,
	MediaDepth,
	MediaVideo1080,
	MediaVideo576,
}

// Extension returns the remote file extension for the media type,
// including the dot.
func (m MediaType) Extension() string {
	switch m {
	case MediaDataCSV, MediaDepth:
		return ".zip"
	case MediaDataHDF5:
		return ".hdf5"
	case MediaVideo1080, MediaVideo576:
		return ".mp4"
	default:
		return ""
	}
}

// Dir returns the remote directory name for the media type. The local
// directory layout mirrors the remote one, so this is also the local
// target directory.
func (m MediaType) Dir() string {
	switch m {
	case MediaDataCSV:
		return "Data-CSV"
	case MediaDataHDF5:
		return "Data-HDF5"
	case MediaDepth:
		return "Depth"
	case MediaVideo1080:
		return "Video-1080p"
	case MediaVideo576:
		return "Video-576p"
	default:
		return ""
	}
}

// AppliesTo reports whether the media type exists for the given record.
// Depth capture was never recorded for force experiments; every other
// combination is available.
func (m MediaType) AppliesTo(r model.Record) bool {
	return !(m == MediaDepth && r.ExperimentType == ExperimentForce)
}
