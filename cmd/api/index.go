package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/estla/skillserver/internal/content/ingest"
	"github.com/estla/skillserver/internal/domain/document"
	"github.com/estla/skillserver/pkg/logger_i"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the index once and print it as JSON lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		logger_i.Init(settings.LogLevel, settings.Production)

		folders, err := document.ParseCategoryFolders(settings.Categories)
		if err != nil {
			return err
		}
		return printIndex(cmd, ingest.Builder{
			Fs:       afero.NewOsFs(),
			Root:     settings.ContentRoot,
			Folders:  folders,
			HostBase: settings.HostBase(),
			Workers:  settings.ExtractWorkers,
		}, folders)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func printIndex(cmd *cobra.Command, builder ingest.Builder, folders []document.CategoryFolder) error {
	records, stats := builder.Build(context.Background())

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode %q: %w", r.Title, err)
		}
	}

	errOut := cmd.ErrOrStderr()
	for _, f := range folders {
		fmt.Fprintf(errOut, "%-10s %4d  (%s)\n", f.Category, stats.PerCategory[f.Category], f.Folder)
	}
	fmt.Fprintf(errOut, "%-10s %4d  failed %d, took %s\n", "total", stats.Total, stats.Failed, stats.Elapsed)
	return nil
}
