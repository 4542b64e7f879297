// Package config provides configuration management for putemg-downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Public putEMG share as base URL
//	// Downloads into the working directory
//	// 10 concurrent fetches, skip existing files
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.DownloadDir = "/data/putemg"
//	err := settings.Save("/path/to/config.json")
package config
