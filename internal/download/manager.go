package download

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/biolab-put/putemg-downloader/internal/config"
	"github.com/biolab-put/putemg-downloader/internal/http"
	ioutils "github.com/biolab-put/putemg-downloader/internal/io"
	"github.com/biolab-put/putemg-downloader/internal/model"
	"github.com/biolab-put/putemg-downloader/internal/putemg"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a fetch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Outcome is the final state of one artifact fetch.
type Outcome int

const (
	// OutcomeSkipped means the local file already existed and no
	// network request was made.
	OutcomeSkipped Outcome = iota

	// OutcomeStored means the artifact was downloaded and written to
	// its final path.
	OutcomeStored

	// OutcomeFailed means the fetch failed; the reason is recorded in
	// the result and sibling fetches were unaffected.
	OutcomeFailed
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeStored:
		return "stored"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchResult is the per-artifact outcome of a fetch run.
type FetchResult struct {
	Artifact putemg.Artifact
	Outcome  Outcome

	// Err is the failure reason when Outcome is OutcomeFailed, nil
	// otherwise.
	Err error
}

// Manager coordinates record selection and artifact fetching.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client

	records   []model.Record
	artifacts []putemg.Artifact
	results   []FetchResult

	totalFiles    int32
	storedFiles   int32
	skippedFiles  int32
	failedFiles   int32
	receivedBytes int64

	onProgress func(ProgressEvent)
}

// NewManager creates a new fetch Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(time.Duration(settings.HTTPTimeoutSeconds) * time.Second),
		onProgress: onProgress,
	}
}

// Initialize fetches the record manifest, resolves the query against
// it, and expands the matched records into the artifact list.
//
// All validation errors (bad experiment type, bad media type, bad or
// unknown participant ID, missing filters) surface here, before any
// artifact fetch. After a successful Initialize, Records reports the
// matched record set and StartFetches downloads the artifacts.
func (m *Manager) Initialize(ctx context.Context, query putemg.Query) error {
	m.progress(ProgressEvent{Message: "Fetching record manifest", Level: LevelVerbose})

	text, err := m.httpClient.GetString(ctx, m.settings.BaseURL+"&files="+putemg.ManifestFile)
	if err != nil {
		return fmt.Errorf("fetching record manifest: %w", err)
	}

	manifest, err := putemg.ParseManifest(text)
	if err != nil {
		return err
	}

	records, err := putemg.Resolve(manifest, query)
	if err != nil {
		return err
	}

	mediaTypes, err := putemg.ParseMediaTypes(query.MediaTypes)
	if err != nil {
		return err
	}

	m.records = records
	m.artifacts = nil
	for _, r := range records {
		m.artifacts = append(m.artifacts, putemg.ExpandArtifacts(r, mediaTypes)...)
	}
	m.totalFiles = int32(len(m.artifacts))

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Matched %d record(s), %d file(s) to fetch", len(records), len(m.artifacts)),
		Level:   LevelInfo,
	})

	return nil
}

// Records returns the matched record set, sorted by participant ID,
// date, and time. This is the queryable result handed to reporting.
func (m *Manager) Records() []model.Record {
	return m.records
}

// Artifacts returns the expanded artifact list.
func (m *Manager) Artifacts() []putemg.Artifact {
	return m.artifacts
}

// Results returns the per-artifact outcomes of the last StartFetches
// run, in artifact order. Nil before any run.
func (m *Manager) Results() []FetchResult {
	return m.results
}

// StartFetches downloads every expanded artifact.
//
// Target directories are created before any fetch dispatches. Fetches
// run concurrently, bounded by MaxConcurrentFetches; an artifact whose
// local file already exists is skipped without touching the network
// (unless OverwriteExisting is set). A single artifact's failure never
// aborts its siblings: it is recorded in that artifact's FetchResult.
//
// StartFetches returns after every artifact has been stored, skipped,
// or failed. The returned error is non-nil only when directory
// creation fails or the run context was cancelled; per-artifact
// failures are reported through Results.
func (m *Manager) StartFetches(ctx context.Context) error {
	dirs := make(map[string]struct{})
	for _, a := range m.artifacts {
		dirs[filepath.Dir(filepath.Join(m.settings.DownloadDir, a.LocalPath))] = struct{}{}
	}
	for dir := range dirs {
		if err := ioutils.EnsureDir(dir); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	m.results = make([]FetchResult, len(m.artifacts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentFetches)

	for i, artifact := range m.artifacts {
		i, artifact := i, artifact // capture
		g.Go(func() error {
			m.results[i] = m.fetchArtifact(gctx, artifact)
			return nil // per-artifact failures never abort siblings
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// GetProgress returns current fetch progress.
func (m *Manager) GetProgress() (stored, skipped, failed, total int32, receivedBytes int64) {
	return atomic.LoadInt32(&m.storedFiles),
		atomic.LoadInt32(&m.skippedFiles),
		atomic.LoadInt32(&m.failedFiles),
		m.totalFiles,
		atomic.LoadInt64(&m.receivedBytes)
}

func (m *Manager) fetchArtifact(ctx context.Context, artifact putemg.Artifact) FetchResult {
	localPath := filepath.Join(m.settings.DownloadDir, artifact.LocalPath)

	if !m.settings.OverwriteExisting && ioutils.FileExists(localPath) {
		atomic.AddInt32(&m.skippedFiles, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing %s", artifact.LocalPath), Level: LevelVerbose})
		return FetchResult{Artifact: artifact, Outcome: OutcomeSkipped}
	}

	if err := ctx.Err(); err != nil {
		atomic.AddInt32(&m.failedFiles, 1)
		return FetchResult{Artifact: artifact, Outcome: OutcomeFailed, Err: err}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", artifact.LocalPath), Level: LevelVerbose})

	var prev int64
	err := m.httpClient.DownloadFile(ctx, m.settings.BaseURL+artifact.RemotePath, localPath, func(written, total int64) {
		atomic.AddInt64(&m.receivedBytes, written-prev)
		prev = written
	})
	if err != nil {
		atomic.AddInt32(&m.failedFiles, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", artifact.LocalPath, err), Level: LevelError})
		return FetchResult{Artifact: artifact, Outcome: OutcomeFailed, Err: err}
	}

	atomic.AddInt32(&m.storedFiles, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Storing %s", artifact.LocalPath), Level: LevelVerbose})
	return FetchResult{Artifact: artifact, Outcome: OutcomeStored}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
