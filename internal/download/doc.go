// Package download provides the fetch orchestration logic for
// retrieving dataset artifacts from the putEMG file share.
//
// # Manager
//
// The Manager coordinates the entire fetch process:
//
//  1. Fetch the record manifest
//  2. Resolve the query filters against it
//  3. Expand matched records into artifacts
//  4. Create target directories
//  5. Fetch artifacts concurrently, skipping existing files
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Initialize(ctx, putemg.Query{
//	    ExperimentTypes: []string{"emg_gestures"},
//	    MediaTypes:      []string{"data-csv"},
//	})
//	if err != nil {
//	    log.Fatal(err) // validation happens here, before any fetch
//	}
//
//	err = manager.StartFetches(ctx)
//	for _, res := range manager.Results() {
//	    fmt.Println(res.Artifact.LocalPath, res.Outcome)
//	}
//
// Manager.Records alone serves the reporting entry point: resolve the
// filters, read the matched record set, never fetch.
//
// # Concurrency
//
// Fetches run under an errgroup bounded by
// settings.MaxConcurrentFetches. Cancelling the run context stops new
// fetches from dispatching and unwinds in-flight ones; StartFetches
// returns only after every artifact has completed, failed, or been
// skipped.
//
// # Failure Isolation
//
// A single artifact's failure (network error, non-2xx status) is
// recorded in its FetchResult and never aborts sibling fetches. Files
// are written via a staging path and renamed on completion, so a file
// present on disk is always complete and safe to skip on the next run.
package download
