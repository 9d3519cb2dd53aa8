package main

import (
	"fmt"

	"shici/pkg/config"
	"shici/pkg/services"

	"github.com/spf13/cobra"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List JSON files in the data directory",
		Args:  cobra.NoArgs,
		RunE:  runSources,
	}
	cmd.Flags().StringVar(&config.DataDir, "data-dir", config.DataDir, "directory to scan")
	return cmd
}

func runSources(cmd *cobra.Command, args []string) error {
	files, err := services.ListSourceFiles(config.DataDir)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintf(out, "No JSON files in %s\n", config.DataDir)
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(out, "%-32s %10d  %s\n", f.Name, f.Size, f.ModTime.Format("2006-01-02 15:04"))
	}
	return nil
}
