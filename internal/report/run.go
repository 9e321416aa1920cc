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

// Package report orchestrates the snapshot-to-report pipeline: discover the
// snapshot files of all clusters, write one Markdown summary per cluster, and
// close with a cross-cluster completeness check and an issues summary.
package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"k8c.io/ingress-report/internal/config"
	"k8c.io/ingress-report/internal/ingress"
	"k8c.io/ingress-report/internal/logger"
	"k8c.io/ingress-report/internal/output"
	"k8c.io/ingress-report/internal/snapshot"
	"k8c.io/ingress-report/internal/ui"

	"k8s.io/apimachinery/pkg/util/sets"
)

// loggingNotice closes every run. The original report tooling advertised a
// "-dl" switch here; this CLI exposes the capability through --log-level.
const loggingNotice = "Note: you can enable detailed logging by running with '--log-level debug'."

// Run processes every snapshot in the cache directory sequentially.
// Each file goes through load, extract, and report writing before the next
// one is touched; issues are accumulated in memory along the way so the
// files are read exactly once.
func Run(ctx context.Context, cfg *config.Config, out *ui.Output) error {
	log := logger.Get()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	files, err := snapshot.Discover(cfg.CacheDir)
	if err != nil {
		return err
	}
	log.Debug("Discovered snapshots", "dir", cfg.CacheDir, "count", len(files))

	processed := sets.New[string]()
	var issues []ingress.Issue

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		cluster := snapshot.ClusterName(file)
		processed.Insert(snapshot.GroupPrefix(cluster))

		list, err := snapshot.Load(file)
		if err != nil {
			return err
		}

		records, clusterIssues := ingress.Extract(cluster, list)
		issues = append(issues, clusterIssues...)

		path, err := output.WriteReport(cfg.OutputDir, cluster, records)
		if err != nil {
			return err
		}
		out.Status("Markdown report for cluster %q created.", cluster)
		log.Debug("Report written", "cluster", cluster, "path", path, "records", len(records))
	}

	reportCompleteness(out, cfg.ExpectedClusters, processed)
	reportIssues(out, issues)
	out.Info(loggingNotice)

	return nil
}

// reportCompleteness checks the expected cluster groups against the groups a
// snapshot was seen for and prints either a warning or a confirmation.
func reportCompleteness(out *ui.Output, expected []string, processed sets.Set[string]) {
	missed := sets.New(expected...).Difference(processed)
	if missed.Len() > 0 {
		out.Warning("The following expected clusters were not processed: %s",
			strings.Join(sets.List(missed), ", "))
		return
	}
	out.Success("All expected clusters were processed.")
}

// reportIssues prints one line per ingress whose hosts are missing or partial.
func reportIssues(out *ui.Output, issues []ingress.Issue) {
	out.Header("Summary of Ingresses with Issues:")
	for _, issue := range issues {
		out.Warning("Cluster: %s, Namespace: %s, Name: %s, Hosts: %s (hosts missing)",
			issue.Cluster, issue.Namespace, issue.Name, issue.Hosts)
	}
}
