/*
Copyright 2026 The KubeLB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"errors"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"k8c.io/ingress-report/internal/config"
	"k8c.io/ingress-report/internal/report"
	"k8c.io/ingress-report/internal/snapshot"
	"k8c.io/ingress-report/internal/ui"
)

func reportCmd() *cobra.Command {
	var cacheDir string
	var outputDir string
	var expected string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate per-cluster ingress summaries from cached snapshots",
		Long: heredoc.Doc(`
			Generate one Markdown summary per cluster from the snapshot files in the
			cache directory, then print a completeness check and an issues summary.

			The cache directory defaults to info_cache_{YYYYMMDD} for today's date,
			matching the layout produced by the snapshot collection step. Each
			{cluster}_ingress.json file inside it yields a {cluster}_ingress.md
			report in the output directory.

			Expected cluster groups (the prefix before the first hyphen of a cluster
			name) can be listed with --expected; the run warns when a group had no
			snapshot at all.
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cacheDir, outputDir, expected)
			if err != nil {
				return err
			}
			return runReport(cmd, cfg)
		},
		Example: heredoc.Doc(`
			# Report on today's snapshots with default directories
			ingress-report report --expected cluster1,cluster2

			# Report on an older snapshot directory
			ingress-report report --cache-dir info_cache_20260820 --output-dir results
		`),
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Directory containing the snapshot files [$INGRESS_REPORT_CACHE_DIR] (default: info_cache_{today})")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory the Markdown reports are written to [$INGRESS_REPORT_OUTPUT_DIR] (default: results)")
	cmd.Flags().StringVarP(&expected, "expected", "e", "", "Comma-separated expected cluster groups [$EXPECTED_CLUSTERS]")
	return cmd
}

func runReport(cmd *cobra.Command, cfg *config.Config) error {
	err := report.Run(cmd.Context(), cfg, ui.New())

	// A missing cache directory is an everyday condition (wrong date, snapshot
	// step not run yet), not a fault: explain it and exit cleanly.
	var notFound *snapshot.NotFoundError
	if errors.As(err, &notFound) {
		ui.Error("The directory %q does not exist. Please check the date or directory path.", notFound.Dir)
		return nil
	}

	return err
}
