package main

import (
	"fmt"

	"github.com/biolab-put/putemg-downloader/internal/download"
	"github.com/biolab-put/putemg-downloader/internal/report"
	"github.com/spf13/cobra"
)

func newRecordsCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records <experiment_types> <media_types> [id...]",
		Short: "List the records matching the given filters without downloading",
		Long: `Records resolves the same filters as fetch but only prints the
matched record set as a table. Nothing is downloaded.`,
		Example: `  putemg-dl records emg_gestures data-csv
  putemg-dl records emg_gestures,emg_force data-csv 03 04`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecords(cctx, args)
		},
	}

	return cmd
}

func runRecords(cctx *commandContext, args []string) error {
	settings, err := cctx.loadSettings()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	manager := download.NewManager(settings, progressPrinter(*cctx.verbose))

	if err := manager.Initialize(ctx, buildQuery(args)); err != nil {
		return err
	}

	records := manager.Records()
	fmt.Println(report.RenderRecords(records))
	fmt.Printf("%d record(s) matched\n", len(records))

	return nil
}
