package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataforge-io/dataforge-go/pkg/tabular"
)

func runInspect(cmd *cobra.Command, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	preview, err := tabular.Inspect(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:    %s\n", path)
	fmt.Fprintf(out, "Format:  %s\n", preview.Format)
	fmt.Fprintf(out, "Size:    %.1f KB\n", float64(info.Size())/1024)
	fmt.Fprintf(out, "Rows:    %d\n", preview.Rows)
	fmt.Fprintf(out, "Columns: %d", len(preview.Columns))
	if len(preview.Columns) > 0 {
		fmt.Fprintf(out, " (%s)", strings.Join(preview.Columns, ", "))
	}
	fmt.Fprintln(out)
	return nil
}
