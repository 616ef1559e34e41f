package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUploadCommand(a *app) *cobra.Command {
	var templateID int64

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a tabular data file and generate a report",
		Long: "Uploads an .xlsx, .xls or .csv file (max 50MB) against the chosen report\n" +
			"template. When the server completes analysis synchronously the new report id\n" +
			"is printed; otherwise the stored file id is printed for later processing.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Uploading and processing file...")

			outcome, err := a.uploadOrchestrator().UploadPath(cmd.Context(), args[0], templateID)
			if err != nil {
				return err
			}

			if reportID, ok := outcome.ReportReady(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Report generated successfully. View it with 'dataforge report %d'\n", reportID)
				return nil
			}
			if fileID, ok := outcome.FileStored(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "File uploaded successfully (file id %d). No report was generated yet.\n", fileID)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&templateID, "template", "t", 0, "report template id (see 'dataforge templates')")
	cmd.MarkFlagRequired("template")
	return cmd
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Preview a local data file before uploading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}
