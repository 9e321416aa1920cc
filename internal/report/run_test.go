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

package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"k8c.io/ingress-report/internal/config"
	"k8c.io/ingress-report/internal/logger"
	"k8c.io/ingress-report/internal/snapshot"
	"k8c.io/ingress-report/internal/ui"
)

const goodSnapshot = `{
  "items": [
    {
      "metadata": {"namespace": "default", "name": "web"},
      "spec": {"rules": [{"host": "app.example.com"}]},
      "status": {"loadBalancer": {"ingress": [{"ip": "203.0.113.10"}]}}
    }
  ]
}`

const hostlessSnapshot = `{
  "items": [
    {
      "metadata": {"namespace": "default", "name": "orphan"},
      "spec": {},
      "status": {"loadBalancer": {"ingress": [{"ip": "203.0.113.20"}]}}
    }
  ]
}`

func setupRun(t *testing.T, snapshots map[string]string, expected []string) (*config.Config, *ui.Output, *bytes.Buffer) {
	t.Helper()

	cacheDir := t.TempDir()
	for name, content := range snapshots {
		if err := os.WriteFile(filepath.Join(cacheDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	logConfig := logger.DefaultConfig()
	logConfig.Output = &buf
	logger.Setup(logConfig)

	cfg := &config.Config{
		CacheDir:         cacheDir,
		OutputDir:        filepath.Join(t.TempDir(), "results"),
		ExpectedClusters: expected,
	}
	return cfg, ui.NewWithWriter(&buf), &buf
}

func TestRun_AllExpectedClustersProcessed(t *testing.T) {
	cfg, out, buf := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": goodSnapshot,
		"cluster2-b_ingress.json": goodSnapshot,
	}, []string{"cluster1", "cluster2"})

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, report := range []string{"cluster1-a_ingress.md", "cluster2-b_ingress.md"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, report)); err != nil {
			t.Errorf("missing report %s: %v", report, err)
		}
	}

	console := buf.String()
	if !strings.Contains(console, "All expected clusters were processed.") {
		t.Errorf("confirmation missing from output:\n%s", console)
	}
	if strings.Contains(console, "were not processed") {
		t.Errorf("unexpected completeness warning:\n%s", console)
	}
}

func TestRun_MissingExpectedGroup(t *testing.T) {
	cfg, out, buf := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": goodSnapshot,
	}, []string{"cluster1", "cluster2"})

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	console := buf.String()
	if !strings.Contains(console, "were not processed") || !strings.Contains(console, "cluster2") {
		t.Errorf("missing-group warning absent:\n%s", console)
	}
	if strings.Contains(console, "All expected clusters were processed.") {
		t.Errorf("confirmation printed despite missing group:\n%s", console)
	}
}

func TestRun_IssuesSummary(t *testing.T) {
	cfg, out, buf := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": hostlessSnapshot,
	}, []string{"cluster1"})

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	console := buf.String()
	if !strings.Contains(console, "Summary of Ingresses with Issues:") {
		t.Errorf("issues summary header missing:\n%s", console)
	}
	if !strings.Contains(console, "Cluster: cluster1-a, Namespace: default, Name: orphan") {
		t.Errorf("issue line missing:\n%s", console)
	}
}

func TestRun_NoIssues(t *testing.T) {
	cfg, out, buf := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": goodSnapshot,
	}, []string{"cluster1"})

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if strings.Contains(buf.String(), "hosts missing") {
		t.Errorf("issue line printed for clean snapshot:\n%s", buf.String())
	}
}

func TestRun_ClosingNotice(t *testing.T) {
	cfg, out, buf := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": goodSnapshot,
	}, nil)

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(buf.String(), "detailed logging") {
		t.Errorf("closing notice missing:\n%s", buf.String())
	}
}

func TestRun_MissingCacheDir(t *testing.T) {
	cfg, out, _ := setupRun(t, nil, nil)
	cfg.CacheDir = filepath.Join(cfg.CacheDir, "info_cache_19700101")

	err := Run(context.Background(), cfg, out)
	if err == nil {
		t.Fatal("Run() with missing cache dir succeeded")
	}

	var notFound *snapshot.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Run() error = %T, want *snapshot.NotFoundError", err)
	}
}

func TestRun_MalformedSnapshotIsFatal(t *testing.T) {
	cfg, out, _ := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": `{"items": [`,
	}, nil)

	if err := Run(context.Background(), cfg, out); err == nil {
		t.Fatal("Run() with malformed snapshot succeeded")
	}
}

func TestRun_CreatesOutputDir(t *testing.T) {
	cfg, out, _ := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": goodSnapshot,
	}, nil)
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "nested", "deeper")

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "cluster1-a_ingress.md")); err != nil {
		t.Errorf("report missing in created output dir: %v", err)
	}
}

func TestRun_ReportConfirmationPerCluster(t *testing.T) {
	cfg, out, buf := setupRun(t, map[string]string{
		"cluster1-a_ingress.json": goodSnapshot,
		"cluster2-b_ingress.json": goodSnapshot,
	}, nil)

	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	console := buf.String()
	for _, cluster := range []string{"cluster1-a", "cluster2-b"} {
		if !strings.Contains(console, `"`+cluster+`"`) {
			t.Errorf("confirmation for %s missing:\n%s", cluster, console)
		}
	}
}
