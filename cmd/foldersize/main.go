package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foldersize/internal/app"
	"foldersize/internal/config"
)

func main() {
	application := app.New()

	rootCmd := &cobra.Command{
		Use:   "foldersize [path]",
		Short: "Explore which folders use the most disk space",
		Long: `Scan a directory tree and browse it largest first.

Examples:
  foldersize              # explore the configured path or the current directory
  foldersize ~/Downloads  # explore a specific folder
  foldersize report /var  # print a summary instead`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Run(cmd, args); err != nil {
				return fmt.Errorf("foldersize: %w", err)
			}
			return nil
		},
	}
	config.RegisterFlags(rootCmd)
	rootCmd.AddCommand(newReportCmd(application))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newReportCmd(application *app.App) *cobra.Command {
	var opts app.ReportOptions

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Print the largest entries without opening the explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Report(cmd, args, opts); err != nil {
				return fmt.Errorf("report: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Depth, "depth", "d", 1, "Directory levels to list")
	cmd.Flags().IntVarP(&opts.Top, "top", "n", 10, "Entries listed per directory, 0 for all")
	return cmd
}
