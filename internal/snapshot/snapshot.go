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

// Package snapshot reads cached per-cluster ingress captures from disk.
// A snapshot file is the JSON output of listing the Ingress resources of one
// cluster (an IngressList), written by an out-of-scope collection step and
// named {cluster}_ingress.json.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8c.io/ingress-report/internal/constants"

	networkingv1 "k8s.io/api/networking/v1"
	"sigs.k8s.io/yaml"
)

// NotFoundError indicates that the snapshot cache directory does not exist.
// The report command recovers this case with a hint to check the date, all
// other errors are fatal.
type NotFoundError struct {
	Dir string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cache directory %s does not exist", e.Dir)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Load reads a snapshot file and parses it into an IngressList.
// Every field below the top level is optional; absent fields surface as zero
// values and are resolved by the extractor, never here.
func Load(path string) (*networkingv1.IngressList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	list := &networkingv1.IngressList{}
	if err := yaml.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return list, nil
}

// Discover lists the snapshot files in the cache directory, sorted by name.
// Returns a NotFoundError when the directory itself is missing.
func Discover(cacheDir string) ([]string, error) {
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Dir: cacheDir, Err: err}
		}
		return nil, fmt.Errorf("failed to list cache directory %s: %w", cacheDir, err)
	}

	// os.ReadDir returns entries sorted by name, so discovery order is stable
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constants.SnapshotSuffix) {
			continue
		}
		files = append(files, filepath.Join(cacheDir, entry.Name()))
	}
	return files, nil
}

// ClusterName derives the cluster name from a snapshot file name: the portion
// before the first underscore, e.g. "cluster1-a_ingress.json" -> "cluster1-a".
func ClusterName(filename string) string {
	base := filepath.Base(filename)
	if idx := strings.Index(base, "_"); idx >= 0 {
		return base[:idx]
	}
	return base
}

// GroupPrefix derives the cluster group from a cluster name: the portion
// before the first hyphen, e.g. "cluster1-a" -> "cluster1". Multiple cluster
// instances aggregate under one expected group label.
func GroupPrefix(clusterName string) string {
	if idx := strings.Index(clusterName, "-"); idx >= 0 {
		return clusterName[:idx]
	}
	return clusterName
}
