package main

import (
	"fmt"
	"os"

	"github.com/biolab-put/putemg-downloader/internal/download"
	"github.com/spf13/cobra"
)

func newFetchCommand(cctx *commandContext) *cobra.Command {
	var outputFlag string
	var concurrencyFlag int
	var overwriteFlag bool

	cmd := &cobra.Command{
		Use:   "fetch <experiment_types> <media_types> [id...]",
		Short: "Download the files of every matching record",
		Long: `Fetch downloads every file matching the given filters into
type-specific directories (Data-CSV, Data-HDF5, Depth, Video-1080p,
Video-576p) under the download directory.

<experiment_types> is a comma-separated list of experiment types
(supported: emg_gestures, emg_force). <media_types> is a
comma-separated list of media types (supported: data-csv, data-hdf5,
depth, video-1080p, video-576p). The optional trailing arguments are
two-digit participant IDs; all participants are fetched if none are
given.`,
		Example: `  putemg-dl fetch emg_gestures data-hdf5,video-1080p
  putemg-dl fetch emg_gestures,emg_force data-csv,depth 03 04 07`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cctx, args, outputFlag, concurrencyFlag, overwriteFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Download directory (overrides config)")
	cmd.Flags().IntVarP(&concurrencyFlag, "concurrency", "n", 0, "Maximum concurrent fetches (overrides config)")
	cmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Re-download files that already exist locally")

	return cmd
}

func runFetch(cctx *commandContext, args []string, output string, concurrency int, overwrite bool) error {
	settings, err := cctx.loadSettings()
	if err != nil {
		return err
	}
	if output != "" {
		settings.DownloadDir = output
	}
	if concurrency > 0 {
		settings.MaxConcurrentFetches = concurrency
	}
	if overwrite {
		settings.OverwriteExisting = true
	}

	ctx, cancel := signalContext()
	defer cancel()

	manager := download.NewManager(settings, progressPrinter(*cctx.verbose))

	if err := manager.Initialize(ctx, buildQuery(args)); err != nil {
		return err
	}

	if len(manager.Artifacts()) == 0 {
		fmt.Println("Nothing to fetch.")
		return nil
	}

	if err := manager.StartFetches(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("Fetch cancelled.")
			os.Exit(130)
		}
		return err
	}

	stored, skipped, failed, total, received := manager.GetProgress()
	fmt.Printf("Done: %d stored, %d skipped, %d failed of %d file(s) (%.2f MB)\n",
		stored, skipped, failed, total, float64(received)/1024/1024)

	if failed > 0 {
		for _, res := range manager.Results() {
			if res.Outcome == download.OutcomeFailed {
				fmt.Fprintf(os.Stderr, "  failed: %s: %v\n", res.Artifact.LocalPath, res.Err)
			}
		}
		return fmt.Errorf("%d file(s) failed to fetch", failed)
	}

	return nil
}
