package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	cctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:   "putemg-dl",
		Short: "Download records from the putEMG dataset",
		Long: `putemg-dl retrieves files from the public putEMG research dataset.

Records are selected by experiment type (emg_gestures, emg_force),
media type (data-csv, data-hdf5, depth, video-1080p, video-576p) and
optionally by two-digit participant ID. Files already present locally
are skipped, so repeated runs are incremental.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(newFetchCommand(cctx))
	rootCmd.AddCommand(newRecordsCommand(cctx))

	return rootCmd
}
