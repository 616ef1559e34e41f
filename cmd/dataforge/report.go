package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dataforge-io/dataforge-go/core/reports"
)

func newReportCommand(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Fetch and display a generated report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			reportID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid report id %q", args[0])
			}

			view := a.reportController().Fetch(cmd.Context(), reportID)
			switch view.State {
			case reports.StateReady:
				return renderReport(cmd, view.Report, raw)
			case reports.StateEmpty:
				// Distinct from an error: there is nothing to retry, start over
				// with a fresh upload instead.
				fmt.Fprintln(cmd.OutOrStdout(), "No report data available. Upload a file to generate one.")
				return nil
			default:
				return fmt.Errorf("%s", view.Message)
			}
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw report payload as JSON")
	return cmd
}

func newReportsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List your generated reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			summaries, err := a.reportController().List(cmd.Context())
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reports yet. Upload a file to generate one.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REPORT\tFILE\tFILENAME\tSTATUS\tUPLOADED")
			for _, s := range summaries {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", s.ReportID, s.FileID, s.Filename, s.Status, s.UploadDate)
			}
			return w.Flush()
		},
	}
}

// renderReport prints the report header and the top-level sections of the
// opaque analytical payload. Shape validation happens here at the
// presentation edge, not in the core.
func renderReport(cmd *cobra.Command, report *reports.Report, raw bool) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Report #%d — %s\n", report.ID, report.Filename)
	if report.UploadDate != "" {
		fmt.Fprintf(out, "Uploaded: %s\n", report.UploadDate)
	}

	if raw {
		data, err := json.MarshalIndent(report.ReportData, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if stats, ok := report.ReportData["summary_stats"].(map[string]any); ok {
		fmt.Fprintln(out, "\nSummary")
		if rows, ok := stats["row_count"].(float64); ok {
			fmt.Fprintf(out, "  Rows: %d\n", int64(rows))
		}
		if cols, ok := stats["columns"].([]any); ok {
			fmt.Fprintf(out, "  Columns: %d\n", len(cols))
		}
		if insights, ok := stats["insights"].([]any); ok && len(insights) > 0 {
			fmt.Fprintln(out, "  Insights:")
			for _, insight := range insights {
				switch v := insight.(type) {
				case string:
					fmt.Fprintf(out, "    - %s\n", v)
				case map[string]any:
					if summary, ok := v["summary"].(string); ok {
						fmt.Fprintf(out, "    - %s\n", summary)
					}
				}
			}
		}
	}

	if vis, ok := report.ReportData["visualizations"].(map[string]any); ok && len(vis) > 0 {
		fmt.Fprintf(out, "\nVisualizations: %d (use --raw to export specs)\n", len(vis))
	}

	if ai, ok := report.ReportData["ai_analysis"].(map[string]any); ok && len(ai) > 0 {
		fmt.Fprintln(out, "\nAI analysis")
		if anomalies, ok := ai["anomalies"].([]any); ok {
			fmt.Fprintf(out, "  Anomalies detected: %d\n", len(anomalies))
		}
		for key := range ai {
			if key != "anomalies" {
				fmt.Fprintf(out, "  Section: %s\n", key)
			}
		}
	}
	return nil
}
