package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "no-such-config.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := DefaultSettings()
	if settings.BaseURL != defaults.BaseURL {
		t.Errorf("BaseURL = %q, want default %q", settings.BaseURL, defaults.BaseURL)
	}
	if settings.MaxConcurrentFetches != defaults.MaxConcurrentFetches {
		t.Errorf("MaxConcurrentFetches = %d, want default %d", settings.MaxConcurrentFetches, defaults.MaxConcurrentFetches)
	}
}

func TestSettings_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "settings.json")

	settings := DefaultSettings()
	settings.DownloadDir = "/data/putemg"
	settings.MaxConcurrentFetches = 4
	settings.OverwriteExisting = true

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DownloadDir != "/data/putemg" {
		t.Errorf("DownloadDir = %q, want %q", loaded.DownloadDir, "/data/putemg")
	}
	if loaded.MaxConcurrentFetches != 4 {
		t.Errorf("MaxConcurrentFetches = %d, want 4", loaded.MaxConcurrentFetches)
	}
	if !loaded.OverwriteExisting {
		t.Error("OverwriteExisting = false, want true")
	}
}
