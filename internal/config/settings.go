package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultBaseURL is the public putEMG file share. The manifest and all
// artifacts are fetched relative to it.
const DefaultBaseURL = "https://chmura.put.poznan.pl/s/G285gnQVuCnfQAx/download?path=%2F"

// Settings holds all configuration options.
type Settings struct {
	// BaseURL is the file share endpoint. Artifact paths are appended
	// to it verbatim, so it must already carry its query prefix.
	BaseURL string `json:"base_url"`

	// DownloadDir is the directory under which the per-media-type
	// target directories (Data-CSV, Depth, ...) are created.
	DownloadDir string `json:"download_dir"`

	// MaxConcurrentFetches bounds how many artifacts are fetched in
	// parallel.
	MaxConcurrentFetches int `json:"max_concurrent_fetches"`

	// OverwriteExisting re-downloads artifacts whose local file is
	// already present. When false, presence of the local file skips
	// the fetch entirely, making repeated runs incremental.
	OverwriteExisting bool `json:"overwrite_existing"`

	// HTTPTimeoutSeconds is the per-request timeout. Zero means no
	// timeout; dataset videos run to gigabytes, so a whole-request
	// deadline is off by default.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:              DefaultBaseURL,
		DownloadDir:          ".",
		MaxConcurrentFetches: 10,
		OverwriteExisting:    false,
		HTTPTimeoutSeconds:   0,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned, so a config
// file is only needed to override them.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
